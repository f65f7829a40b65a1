package reports

import (
	"errors"
	"net/http"
	"strconv"

	"health-reports/internal/api"
	"health-reports/internal/handler"
	"health-reports/internal/middleware"
	"health-reports/internal/service"
	"health-reports/internal/storage"

	"github.com/labstack/echo/v4"
)

// AddReportHandler 上傳並數位化一份報告
// @Summary     新增報告
// @Description 以 multipart 表單上傳報告影像與欄位；userId 省略時使用令牌中的使用者
// @Tags        reports
// @Accept      multipart/form-data
// @Produce     json
// @Param       doctorName   formData string true  "醫師姓名"
// @Param       hospitalName formData string true  "醫院名稱"
// @Param       reportDate   formData string true  "報告日期 (YYYY-MM-DD)"
// @Param       disease      formData string false "疾病分類，預設 General"
// @Param       userId       formData int    false "使用者 ID，須與令牌相同"
// @Param       reportImage  formData file   true  "報告影像"
// @Success     201 {object} api.AddReportResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/add-report [post]
func AddReportHandler(svc Service, maxImageBytes int64) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "missing token"})
		}

		var req api.AddReportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid form data"})
		}

		fh, err := c.FormFile(ImageField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "Image is required"})
			}
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid form data"})
		}
		if fh.Size == 0 {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "Image is required"})
		}
		if maxImageBytes > 0 && fh.Size > maxImageBytes {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "Image is too large"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: handler.ValidationMessage(err)})
		}

		userID := current
		if req.UserID != "" {
			id, err := strconv.Atoi(req.UserID)
			if err != nil || id <= 0 {
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "userId must be a positive integer"})
			}
			if id != current {
				return c.JSON(http.StatusForbidden, api.HTTPError{Message: "cannot add a report for another user"})
			}
		}

		f, err := fh.Open()
		if err != nil {
			return handler.RespondError(c, err, "Server upload error")
		}
		defer f.Close()

		r, err := svc.AddReport(c.Request().Context(), service.AddReportInput{
			DoctorName:   req.DoctorName,
			HospitalName: req.HospitalName,
			ReportDate:   req.ReportDate,
			Disease:      req.Disease,
			UserID:       userID,
			Image: &storage.Upload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get(echo.HeaderContentType),
				Size:        fh.Size,
				Body:        f,
			},
		})
		if err != nil {
			return handler.RespondError(c, err, "Server upload error")
		}

		return c.JSON(http.StatusCreated, api.AddReportResponse{
			Message: "Report Digitized!",
			Report:  api.NewReportResponse(*r),
		})
	}
}
