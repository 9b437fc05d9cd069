package domain

import "github.com/shopspring/decimal"

// UserBalance is a point-in-time view of a user's ledger.
type UserBalance struct {
	UserID       string
	Balance      decimal.Decimal
	GrossSavings decimal.Decimal
	GoalProgress decimal.Decimal
}
