package dto

import (
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse defines the data returned for a user's ledger view.
type BalanceResponse struct {
	UserID       string          `json:"userID"`
	Balance      decimal.Decimal `json:"balance"`
	GrossSavings decimal.Decimal `json:"grossSavings"`
	GoalProgress decimal.Decimal `json:"goalProgress"`
}

// ToBalanceResponse converts a domain.UserBalance to BalanceResponse DTO.
func ToBalanceResponse(b *domain.UserBalance) BalanceResponse {
	return BalanceResponse{
		UserID:       b.UserID,
		Balance:      b.Balance,
		GrossSavings: b.GrossSavings,
		GoalProgress: b.GoalProgress,
	}
}
