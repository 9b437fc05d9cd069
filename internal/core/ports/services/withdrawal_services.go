package services

import (
	"context"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

// WithdrawalReaderSvc defines read operations for withdrawals
type WithdrawalReaderSvc interface {
	// GetWithdrawalByID retrieves a specific withdrawal by its ID.
	GetWithdrawalByID(ctx context.Context, withdrawalID string, requestingUserID string) (*domain.Transaction, error)

	// ListWithdrawals retrieves a paginated list of a user's withdrawals using
	// token-based pagination. It returns the withdrawals, a token for the next
	// page, and an error.
	ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string, requestingUserID string) ([]domain.Transaction, *string, error)
}

// WithdrawalWriterSvc defines write operations for withdrawals
type WithdrawalWriterSvc interface {
	// CreateWithdrawal records a withdrawal for a user after authorizing it
	// against their available balance. Returns ledger.ErrInsufficientFunds
	// when the amount exceeds the available balance.
	CreateWithdrawal(ctx context.Context, userID string, req dto.CreateWithdrawalRequest, requestingUserID string) (*domain.Transaction, error)
}

// WithdrawalSvcFacade combines all withdrawal-related service interfaces
type WithdrawalSvcFacade interface {
	WithdrawalReaderSvc
	WithdrawalWriterSvc
}
