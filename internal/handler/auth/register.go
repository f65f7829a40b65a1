package auth

import (
	"net/http"

	"health-reports/internal/api"
	"health-reports/internal/handler"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新使用者
// @Summary     註冊使用者
// @Description 以 name、email、password 建立帳號，密碼以 bcrypt 雜湊保存
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.RegisterResponse
// @Failure     400  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: handler.ValidationMessage(err)})
		}

		u, err := svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err, "Server error")
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Message: "User registered successfully!",
			User:    api.NewUserResponse(u),
		})
	}
}
