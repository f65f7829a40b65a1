package reports

import (
	"net/http"
	"strconv"

	"health-reports/internal/api"
	"health-reports/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListReportsHandler 列出使用者的所有報告，依報告日期新到舊
// @Summary     列出報告
// @Tags        reports
// @Produce     json
// @Param       userId path     int true "使用者 ID"
// @Success     200    {array}  api.ReportResponse
// @Failure     400    {object} api.HTTPError
// @Failure     401    {object} api.HTTPError
// @Failure     403    {object} api.HTTPError
// @Failure     500    {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/reports/{userId} [get]
func ListReportsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil || userID <= 0 {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid user id"})
		}

		rs, err := svc.ListReports(c.Request().Context(), userID)
		if err != nil {
			return handler.RespondError(c, err, "Error fetching reports")
		}
		return c.JSON(http.StatusOK, api.NewReportResponses(rs))
	}
}
