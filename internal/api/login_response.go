// File: internal/api/login_response.go
package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message   string       `json:"message" example:"Login successful"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time    `json:"expiresAt" example:"2025-05-09T15:04:05Z"`
	User      UserResponse `json:"user"`
}
