// File: internal/api/user_response.go
package api

import "health-reports/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	Message string       `json:"message" example:"User registered successfully!"`
	User    UserResponse `json:"user"`
}
