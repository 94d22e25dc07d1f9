package request

import "encoding/json"

type RegisterRequest struct {
	Username      string      `json:"username" validate:"required,min=3,max=20"`
	FirstName     string      `json:"firstName" validate:"required"`
	LastName      string      `json:"lastName" validate:"required"`
	Email         string      `json:"email" validate:"required,email,max=50"`
	ContactNumber json.Number `json:"contactNumber" validate:"required,numeric"`
	Password      string      `json:"password" validate:"required,min=8,max=20"`
	Role          []string    `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
