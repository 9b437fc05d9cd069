package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User is the database representation of a saver or administrator.
type User struct {
	UserID       string              `db:"user_id"`
	Name         string              `db:"name"`
	Email        string              `db:"email"`
	Phone        sql.NullString      `db:"phone"`
	Role         string              `db:"role"`
	Goal         decimal.NullDecimal `db:"goal"`
	Frequency    sql.NullString      `db:"frequency"`
	PasswordHash string              `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token columns
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
