package dto

import (
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string           `json:"userID"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone,omitempty"`
	Role      domain.UserRole  `json:"role"`
	Goal      *decimal.Decimal `json:"goal,omitempty"`
	Frequency string           `json:"frequency,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Goal:      user.Goal,
		Frequency: user.Frequency,
		CreatedAt: user.CreatedAt,
	}
}
