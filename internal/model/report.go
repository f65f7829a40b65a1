// File: internal/model/report.go
package model

import "time"

// DefaultDisease is stored when a report is added without a disease tag.
const DefaultDisease = "General"

// ReportDateLayout is the wire and storage layout of Report.ReportDate.
const ReportDateLayout = "2006-01-02"

type Report struct {
	ID           int       `db:"id" json:"id"`
	DoctorName   string    `db:"doctor_name" json:"doctorName"`
	HospitalName string    `db:"hospital_name" json:"hospitalName"`
	ReportDate   time.Time `db:"report_date" json:"reportDate"`
	Disease      string    `db:"disease" json:"disease"`
	ImageURL     string    `db:"image_url" json:"imageUrl"`
	UserID       int       `db:"user_id" json:"userId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
