package response

import (
	"time"

	"moviebooking/internal/data/entity"
)

// LoginResponse mirrors the JWT response handed to clients on login
type LoginResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		Roles:         user.RoleNames(),
		CreatedAt:     user.CreatedAt,
	}
}

func LoginToResponse(user *entity.User, token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		Token:     token,
		Type:      "Bearer",
		ExpiresAt: expiresAt,
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Roles:     user.RoleNames(),
	}
}
