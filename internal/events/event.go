// Package events publishes report lifecycle messages for downstream
// consumers (notifications, analytics) that should not query the database.
package events

import "context"

// ReportCreated is published after a report row is committed.
type ReportCreated struct {
	ReportID     int    `json:"report_id"`
	UserID       int    `json:"user_id"`
	DoctorName   string `json:"doctor_name"`
	HospitalName string `json:"hospital_name"`
	ReportDate   string `json:"report_date"`
	Disease      string `json:"disease"`
	ImageURL     string `json:"image_url"`
	CreatedAt    string `json:"created_at"`
}

type Publisher interface {
	PublishReportCreated(ctx context.Context, e ReportCreated) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishReportCreated(context.Context, ReportCreated) error { return nil }
