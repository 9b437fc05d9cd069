package dto

import (
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingRequest defines the data needed to record a deposit.
type CreateSavingRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description *string         `json:"description"`
}

// UpdateSavingRequest defines the data allowed for amending a deposit.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateSavingRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,dgt0"`
	Description *string          `json:"description"`
}

// ListTransactionsParams defines query parameters for listing deposits or withdrawals.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// SavingResponse defines the data returned for a deposit.
type SavingResponse struct {
	SavingID    string          `json:"savingID"`
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ListSavingsResponse wraps a page of deposits.
type ListSavingsResponse struct {
	Savings   []SavingResponse `json:"savings"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToSavingResponse converts a credit domain.Transaction to SavingResponse DTO.
func ToSavingResponse(txn *domain.Transaction) SavingResponse {
	return SavingResponse{
		SavingID:    txn.TransactionID,
		UserID:      txn.UserID,
		Amount:      txn.Amount,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		CreatedBy:   txn.CreatedBy,
	}
}

// ToListSavingsResponse converts a page of credit transactions to ListSavingsResponse.
func ToListSavingsResponse(txns []domain.Transaction, nextToken *string) ListSavingsResponse {
	savings := make([]SavingResponse, len(txns))
	for i, txn := range txns {
		savings[i] = ToSavingResponse(&txn)
	}
	return ListSavingsResponse{
		Savings:   savings,
		NextToken: nextToken,
	}
}
