// Package reports serves report upload and listing.
package reports

import (
	"context"

	"health-reports/internal/model"
	"health-reports/internal/service"
)

// ImageField is the multipart file part carrying the report image.
const ImageField = "reportImage"

// Service is implemented by *service.ReportService.
type Service interface {
	AddReport(ctx context.Context, in service.AddReportInput) (*model.Report, error)
	ListReports(ctx context.Context, userID int) ([]model.Report, error)
}
