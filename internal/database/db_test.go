package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB_PanicsWithoutFn(t *testing.T) {
	ctx := context.Background()
	db := &FakeDB{}

	require.PanicsWithValue(t, "FakeDB: unexpected Exec: DELETE FROM reports", func() {
		_, _ = db.Exec(ctx, "DELETE FROM reports")
	})
	require.PanicsWithValue(t, "FakeDB: unexpected Query: SELECT 1", func() {
		_, _ = db.Query(ctx, "SELECT 1")
	})
	require.PanicsWithValue(t, "FakeDB: unexpected QueryRow: SELECT 2", func() {
		db.QueryRow(ctx, "SELECT 2")
	})
	require.Panics(t, func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDB_Dispatch(t *testing.T) {
	ctx := context.Background()
	var args []any
	closed := false
	db := &FakeDB{
		ExecFn: func(_ context.Context, _ string, a ...any) (pgconn.CommandTag, error) {
			args = a
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return emptyRows{}, nil },
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return emptyRows{}
		},
		PingFn:  func(context.Context) error { return errors.New("down") },
		CloseFn: func() { closed = true },
	}

	tag, err := db.Exec(ctx, "DELETE FROM reports WHERE id = $1", 7)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
	require.Equal(t, []any{7}, args)

	rows, err := db.Query(ctx, "SELECT id FROM reports")
	require.NoError(t, err)
	require.False(t, rows.Next())

	require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users").Scan())
	require.EqualError(t, db.Ping(ctx), "down")
	db.Close()
	require.True(t, closed)

	require.Equal(t, []string{
		"DELETE FROM reports WHERE id = $1",
		"SELECT id FROM reports",
		"SELECT id FROM users",
	}, db.Statements)
}
