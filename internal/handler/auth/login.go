// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"health-reports/internal/api"
	"health-reports/internal/handler"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 email 與 password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /auth/login [post]
func LoginHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request body"})
		}
		// 缺欄位一律視為帳密錯誤
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "Invalid credentials"})
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err, "Server error")
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message:   "Login successful",
			Token:     res.Token,
			ExpiresAt: res.ExpiresAt,
			User:      api.NewUserResponse(res.User),
		})
	}
}
