package store

import (
	"context"
	"fmt"

	"health-reports/internal/database"
	"health-reports/internal/model"
)

func CreateReport(ctx context.Context, db database.DB, r *model.Report) (*model.Report, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reports (doctor_name, hospital_name, report_date, disease, image_url, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		r.DoctorName,
		r.HospitalName,
		r.ReportDate,
		r.Disease,
		r.ImageURL,
		r.UserID,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("CreateReport: %w", ErrUserNotFound)
		}
		return nil, fmt.Errorf("CreateReport: %w", err)
	}
	return r, nil
}

// ListReportsByUser returns the user's reports newest report_date first.
// Reports sharing a date keep insertion order.
func ListReportsByUser(ctx context.Context, db database.DB, userID int) ([]model.Report, error) {
	rows, err := db.Query(ctx,
		`SELECT id, doctor_name, hospital_name, report_date, disease, image_url, user_id, created_at
		 FROM reports
		 WHERE user_id = $1
		 ORDER BY report_date DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReportsByUser: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(
			&r.ID,
			&r.DoctorName,
			&r.HospitalName,
			&r.ReportDate,
			&r.Disease,
			&r.ImageURL,
			&r.UserID,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListReportsByUser: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReportsByUser: %w", err)
	}
	return reports, nil
}
