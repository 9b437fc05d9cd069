package dto

import (
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the data needed to register a new user.
type CreateUserRequest struct {
	Name      string           `json:"name" binding:"required"`
	Email     string           `json:"email" binding:"required,email"`
	Password  string           `json:"password" binding:"required,min=8"`
	Phone     *string          `json:"phone"`
	Goal      *decimal.Decimal `json:"goal" binding:"omitempty,dgt0"`
	Frequency *string          `json:"frequency" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	Role      *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name      *string          `json:"name"`
	Phone     *string          `json:"phone"`
	Goal      *decimal.Decimal `json:"goal" binding:"omitempty,dgt0"`
	Frequency *string          `json:"frequency" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
