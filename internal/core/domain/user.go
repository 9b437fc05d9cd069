package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole distinguishes administrators from regular savers.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User represents a saver (or administrator) in the domain.
type User struct {
	UserID       string           `json:"userID"` // Primary Key (UUID)
	Name         string           `json:"name"`
	Email        string           `json:"email"` // Unique login identifier
	Phone        string           `json:"phone,omitempty"`
	Role         UserRole         `json:"role"`
	Goal         *decimal.Decimal `json:"goal,omitempty"`      // Savings target; nil when not set
	Frequency    string           `json:"frequency,omitempty"` // e.g. WEEKLY, MONTHLY
	PasswordHash string           `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token fields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
