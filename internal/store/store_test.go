package store

import (
	"time"

	"health-reports/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- fakes ---------- */

// fakeUserRow serves two Scan shapes:
// 1) len(dest)==5 → GetUserByID / GetUserByEmail
// 2) len(dest)==2 → CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 5:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeReportRow answers CreateReport's RETURNING id, created_at.
type fakeReportRow struct {
	scanErr   error
	id        int
	createdAt time.Time
}

func (r *fakeReportRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = r.createdAt
	return nil
}

// fakeReportRows implements pgx.Rows over a fixed slice.
type fakeReportRows struct {
	data    []model.Report
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeReportRows) Close()                                       { r.closed = true }
func (r *fakeReportRows) Err() error                                   { return r.err }
func (r *fakeReportRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeReportRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeReportRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeReportRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	rep := r.data[r.idx]
	r.idx++
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
func (r *fakeReportRows) Values() ([]any, error) { return nil, nil }
func (r *fakeReportRows) RawValues() [][]byte    { return nil }
func (r *fakeReportRows) Conn() *pgx.Conn        { return nil }
