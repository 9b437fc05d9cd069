package services

import (
	"context"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

// SavingReaderSvc defines read operations for savings entries
type SavingReaderSvc interface {
	// GetSavingByID retrieves a specific deposit by its ID.
	GetSavingByID(ctx context.Context, savingID string, requestingUserID string) (*domain.Transaction, error)

	// ListSavings retrieves a paginated list of a user's deposits using
	// token-based pagination. It returns the deposits, a token for the next
	// page, and an error.
	ListSavings(ctx context.Context, userID string, limit int, nextToken *string, requestingUserID string) ([]domain.Transaction, *string, error)
}

// SavingWriterSvc defines write operations for savings entries
type SavingWriterSvc interface {
	// CreateSaving records a new deposit for a user.
	CreateSaving(ctx context.Context, userID string, req dto.CreateSavingRequest, requestingUserID string) (*domain.Transaction, error)

	// UpdateSaving amends a deposit's amount or description. The change is
	// rejected when it would leave the user's balance negative.
	UpdateSaving(ctx context.Context, savingID string, req dto.UpdateSavingRequest, requestingUserID string) (*domain.Transaction, error)
}

// SavingLifecycleSvc defines operations for managing savings entry lifecycle
type SavingLifecycleSvc interface {
	// DeleteSaving marks a deposit as deleted (soft delete). The removal is
	// rejected when it would leave the user's balance negative.
	DeleteSaving(ctx context.Context, savingID string, requestingUserID string) error
}

// SavingSvcFacade combines all savings-related service interfaces
type SavingSvcFacade interface {
	SavingReaderSvc
	SavingWriterSvc
	SavingLifecycleSvc
}

// BalanceSvcFacade defines read operations over a user's ledger as a whole.
type BalanceSvcFacade interface {
	// GetUserBalance computes the user's available balance, gross savings and
	// goal progress from their full transaction history.
	GetUserBalance(ctx context.Context, userID string, requestingUserID string) (*domain.UserBalance, error)
}
