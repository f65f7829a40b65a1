package api

import (
	"time"

	"health-reports/internal/model"
)

// swagger:model api.ReportResponse
type ReportResponse struct {
	ID           int       `json:"id" example:"7"`
	DoctorName   string    `json:"doctorName" example:"Dr. Chen"`
	HospitalName string    `json:"hospitalName" example:"City Hospital"`
	ReportDate   string    `json:"reportDate" example:"2025-05-01"`
	Disease      string    `json:"disease" example:"General"`
	ImageURL     string    `json:"imageUrl" example:"/uploads/0b6f3c1e.png"`
	UserID       int       `json:"userId" example:"1"`
	CreatedAt    time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

func NewReportResponse(r model.Report) ReportResponse {
	return ReportResponse{
		ID:           r.ID,
		DoctorName:   r.DoctorName,
		HospitalName: r.HospitalName,
		ReportDate:   r.ReportDate.Format(model.ReportDateLayout),
		Disease:      r.Disease,
		ImageURL:     r.ImageURL,
		UserID:       r.UserID,
		CreatedAt:    r.CreatedAt,
	}
}

// NewReportResponses never returns nil so an empty listing encodes as [].
func NewReportResponses(rs []model.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewReportResponse(r))
	}
	return out
}

// swagger:model api.AddReportResponse
type AddReportResponse struct {
	Message string         `json:"message" example:"Report Digitized!"`
	Report  ReportResponse `json:"report"`
}
