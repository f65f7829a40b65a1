package auth

import (
	"errors"
	"net/http"

	"health-reports/internal/api"
	"health-reports/internal/handler"
	"health-reports/internal/middleware"
	"health-reports/internal/store"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得目前登入的使用者
// @Summary     取得目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "missing token"})
		}

		u, err := svc.Me(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.HTTPError{Message: "user not found"})
			}
			return handler.RespondError(c, err, "Server error")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(u))
	}
}
