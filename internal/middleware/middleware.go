package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"health-reports/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier is satisfied by *service.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*service.CustomClaims, error)
}

func extractClaims(c echo.Context, tokens TokenVerifier) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth verifies the bearer token and stores its claims under ContextUserKey.
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireOwner rejects requests whose :param user id differs from the
// authenticated user. Must run after RequireAuth.
func RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, ok := UserID(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			id, err := strconv.Atoi(c.Param(param))
			if err != nil || id <= 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
			}
			if id != current {
				return echo.NewHTTPError(http.StatusForbidden, "access to another user's reports is not allowed")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id set by RequireAuth.
func UserID(c echo.Context) (int, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok || claims == nil {
		return 0, false
	}
	return claims.UserID, true
}
