package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"health-reports/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memDB answers the statements issued by the store package from memory,
// enforcing the same unique and foreign key constraints as the schema.
type memDB struct {
	mu      sync.Mutex
	users   []model.User
	reports []model.Report
	now     time.Time
}

func newMemDB() *memDB {
	return &memDB{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func errRow(err error) pgx.Row {
	return rowFunc(func(...any) error { return err })
}

func (m *memDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("unexpected Exec")
}

func (m *memDB) Ping(context.Context) error { return nil }
func (m *memDB) Close()                     {}

func (m *memDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	sql = strings.TrimSpace(sql)

	switch {
	case strings.HasPrefix(sql, "INSERT INTO users"):
		email := args[1].(string)
		for _, u := range m.users {
			if u.Email == email {
				return errRow(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			}
		}
		u := model.User{
			ID:           len(m.users) + 1,
			Name:         args[0].(string),
			Email:        email,
			PasswordHash: args[2].(string),
			CreatedAt:    m.now,
		}
		m.users = append(m.users, u)
		return rowFunc(func(dest ...any) error {
			*dest[0].(*int) = u.ID
			*dest[1].(*time.Time) = u.CreatedAt
			return nil
		})

	case strings.HasPrefix(sql, "INSERT INTO reports"):
		userID := args[5].(int)
		if m.userByID(userID) == nil {
			return errRow(&pgconn.PgError{Code: "23503"})
		}
		r := model.Report{
			ID:           len(m.reports) + 1,
			DoctorName:   args[0].(string),
			HospitalName: args[1].(string),
			ReportDate:   args[2].(time.Time),
			Disease:      args[3].(string),
			ImageURL:     args[4].(string),
			UserID:       userID,
			CreatedAt:    m.now,
		}
		m.reports = append(m.reports, r)
		return rowFunc(func(dest ...any) error {
			*dest[0].(*int) = r.ID
			*dest[1].(*time.Time) = r.CreatedAt
			return nil
		})

	case strings.Contains(sql, "FROM users WHERE email"):
		return userRow(m.userByEmail(args[0].(string)))

	case strings.Contains(sql, "FROM users WHERE id"):
		return userRow(m.userByID(args[0].(int)))
	}
	panic("memDB: unexpected QueryRow: " + sql)
}

func (m *memDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !strings.Contains(sql, "FROM reports") {
		panic("memDB: unexpected Query: " + sql)
	}
	userID := args[0].(int)
	var out []model.Report
	for _, r := range m.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ReportDate.Equal(out[j].ReportDate) {
			return out[i].ReportDate.After(out[j].ReportDate)
		}
		return out[i].ID < out[j].ID
	})
	return &memRows{data: out, idx: -1}, nil
}

func (m *memDB) userByEmail(email string) *model.User {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u
		}
	}
	return nil
}

func (m *memDB) userByID(id int) *model.User {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u
		}
	}
	return nil
}

func (m *memDB) reportCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}

func userRow(u *model.User) pgx.Row {
	if u == nil {
		return errRow(pgx.ErrNoRows)
	}
	return rowFunc(func(dest ...any) error {
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*time.Time) = u.CreatedAt
		return nil
	})
}

type memRows struct {
	data []model.Report
	idx  int
}

func (r *memRows) Close()                                       {}
func (r *memRows) Err() error                                   { return nil }
func (r *memRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *memRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *memRows) Values() ([]any, error)                       { return nil, nil }
func (r *memRows) RawValues() [][]byte                          { return nil }
func (r *memRows) Conn() *pgx.Conn                              { return nil }

func (r *memRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *memRows) Scan(dest ...any) error {
	rep := r.data[r.idx]
	*dest[0].(*int) = rep.ID
	*dest[1].(*string) = rep.DoctorName
	*dest[2].(*string) = rep.HospitalName
	*dest[3].(*time.Time) = rep.ReportDate
	*dest[4].(*string) = rep.Disease
	*dest[5].(*string) = rep.ImageURL
	*dest[6].(*int) = rep.UserID
	*dest[7].(*time.Time) = rep.CreatedAt
	return nil
}
