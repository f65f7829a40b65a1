package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"health-reports/internal/api"
	"health-reports/internal/service"

	"github.com/labstack/echo/v4"
)

// RespondError maps service errors to 400 responses. Anything unrecognised
// is logged and answered with a 500 carrying only fallback.
func RespondError(c echo.Context, err error, fallback string) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, api.HTTPError{Message: ve.Message})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "User already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "Invalid credentials"})
	}

	req := c.Request()
	slog.ErrorContext(req.Context(), "request failed",
		"method", req.Method,
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: fallback})
}
