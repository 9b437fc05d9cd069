package dto

import (
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest defines the data needed to record a withdrawal.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description *string         `json:"description"`
}

// WithdrawalResponse defines the data returned for a withdrawal.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	UserID       string          `json:"userID"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ListWithdrawalsResponse wraps a page of withdrawals.
type ListWithdrawalsResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToWithdrawalResponse converts a debit domain.Transaction to WithdrawalResponse DTO.
func ToWithdrawalResponse(txn *domain.Transaction) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: txn.TransactionID,
		UserID:       txn.UserID,
		Amount:       txn.Amount,
		Description:  txn.Description,
		CreatedAt:    txn.CreatedAt,
		CreatedBy:    txn.CreatedBy,
	}
}

// ToListWithdrawalsResponse converts a page of debit transactions to ListWithdrawalsResponse.
func ToListWithdrawalsResponse(txns []domain.Transaction, nextToken *string) ListWithdrawalsResponse {
	withdrawals := make([]WithdrawalResponse, len(txns))
	for i, txn := range txns {
		withdrawals[i] = ToWithdrawalResponse(&txn)
	}
	return ListWithdrawalsResponse{
		Withdrawals: withdrawals,
		NextToken:   nextToken,
	}
}
