package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"health-reports/internal/database"
	"health-reports/internal/model"
	"health-reports/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	getUserByEmail = store.GetUserByEmail
	getUserByID    = store.GetUserByID
	createUser     = store.CreateUser
)

// dummyHash is compared against when the email is unknown so that a miss
// costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)
	return string(h)
})

type AuthService struct {
	db     database.DB
	tokens *TokenManager
}

func NewAuthService(db database.DB, tokens *TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// LoginResult is the issued token together with the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	switch {
	case name == "":
		return nil, invalid("name", "name is required")
	case email == "":
		return nil, invalid("email", "email is required")
	case !validEmail(email):
		return nil, invalid("email", "invalid email format")
	case password == "":
		return nil, invalid("password", "password is required")
	}

	existing, err := getUserByEmail(ctx, s.db, email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrConflict
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := createUser(ctx, s.db, &model.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := getUserByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Mismatch is certain; only the bcrypt work matters here.
			_ = ComparePassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// Me returns the user behind a verified token subject.
func (s *AuthService) Me(ctx context.Context, userID int) (*model.User, error) {
	return getUserByID(ctx, s.db, userID)
}
