package api

// AddReportRequest holds the text fields of the multipart upload; the image
// itself arrives as the reportImage file part.
// swagger:model api.AddReportRequest
type AddReportRequest struct {
	DoctorName   string `form:"doctorName" validate:"required" example:"Dr. Chen"`
	HospitalName string `form:"hospitalName" validate:"required" example:"City Hospital"`
	ReportDate   string `form:"reportDate" validate:"required,datetime=2006-01-02" example:"2025-05-01"`
	Disease      string `form:"disease" example:"Diabetes"`
	UserID       string `form:"userId" validate:"omitempty,number" example:"1"`
}
