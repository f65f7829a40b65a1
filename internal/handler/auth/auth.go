// Package auth serves registration, login and the current-user endpoint.
package auth

import (
	"context"

	"health-reports/internal/model"
	"health-reports/internal/service"
)

// Service is implemented by *service.AuthService.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	Me(ctx context.Context, userID int) (*model.User, error)
}
