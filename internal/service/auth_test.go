package service

import (
	"context"
	"errors"
	"testing"

	"health-reports/internal/database"
	"health-reports/internal/model"
	"health-reports/internal/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*AuthService, *memDB) {
	t.Helper()
	db := newMemDB()
	return NewAuthService(db, newTestTokens(t)), db
}

func TestRegister(t *testing.T) {
	svc, db := newTestAuth(t)

	u, err := svc.Register(context.Background(), " Ada ", " Ada@Example.com ", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "Ada", u.Name)
	require.Equal(t, "ada@example.com", u.Email)

	stored := db.userByEmail("ada@example.com")
	require.NotNil(t, stored)
	require.NotEqual(t, "pw", stored.PasswordHash)
	require.NoError(t, ComparePassword(stored.PasswordHash, "pw"))
}

func TestRegister_Duplicate(t *testing.T) {
	svc, db := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Other", "ADA@example.com", "pw2")
	require.ErrorIs(t, err, ErrConflict)
	require.Len(t, db.users, 1)
}

func TestRegister_RaceLostToConstraint(t *testing.T) {
	svc, _ := newTestAuth(t)

	orig := getUserByEmail
	t.Cleanup(func() { getUserByEmail = orig })
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, store.ErrNotFound
	}

	ctx := context.Background()
	_, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.ErrorIs(t, err, ErrConflict)
}

func TestRegister_Validation(t *testing.T) {
	svc, db := newTestAuth(t)
	cases := []struct {
		name, email, password, field string
	}{
		{"", "a@b.co", "pw", "name"},
		{"Ada", "", "pw", "email"},
		{"Ada", "not-an-email", "pw", "email"},
		{"Ada", "Ada <a@b.co>", "pw", "email"},
		{"Ada", "a@b.co", "", "password"},
	}
	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
		var v *ValidationError
		require.ErrorAs(t, err, &v)
		require.Equal(t, tc.field, v.Field)
	}
	require.Empty(t, db.users)
}

func TestRegister_LookupError(t *testing.T) {
	svc, _ := newTestAuth(t)

	orig := getUserByEmail
	t.Cleanup(func() { getUserByEmail = orig })
	boom := errors.New("db down")
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, boom
	}

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "pw")
	require.ErrorIs(t, err, boom)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ADA@example.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "ada@example.com", res.User.Email)

	claims, err := svc.tokens.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, claims.UserID)
	require.Equal(t, res.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "ada@example.com", "nope")
	_, unknownEmail := svc.Login(ctx, "bob@example.com", "pw")
	_, empty := svc.Login(ctx, "", "")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.ErrorIs(t, empty, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_UnknownEmailSpendsBcryptWork(t *testing.T) {
	svc, _ := newTestAuth(t)

	var compared [][]byte
	orig := bcryptCompareHashAndPassword
	bcryptCompareHashAndPassword = func(hash, password []byte) error {
		compared = append(compared, hash)
		return orig(hash, password)
	}
	t.Cleanup(func() { bcryptCompareHashAndPassword = orig })

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Len(t, compared, 1)
	require.Equal(t, dummyHash(), string(compared[0]))
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	require.Equal(t, PasswordCost, cost)
	require.ErrorIs(t, orig(compared[0], []byte("pw")), bcrypt.ErrMismatchedHashAndPassword)
}

func TestLogin_LookupError(t *testing.T) {
	svc, _ := newTestAuth(t)

	orig := getUserByEmail
	t.Cleanup(func() { getUserByEmail = orig })
	boom := errors.New("db down")
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, boom
	}

	_, err := svc.Login(context.Background(), "ada@example.com", "pw")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()
	u, err := svc.Register(ctx, "Ada", "ada@example.com", "pw")
	require.NoError(t, err)

	got, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	_, err = svc.Me(ctx, 99)
	require.ErrorIs(t, err, store.ErrNotFound)
}
