package repositories

import (
	"context"
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
)

// AuthorizeFunc inspects a user's full active transaction history and returns
// an error when the attempted change must not go through. It runs inside a
// database transaction while the user's ledger row lock is held, so the
// history it sees cannot change underneath it.
type AuthorizeFunc func(history []domain.Transaction) error

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUserID retrieves the full active transaction history for a user,
	// ordered by creation time ascending.
	FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsByUser retrieves a paginated list of a user's transactions using
	// token-based pagination, optionally filtered by kind.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByUser(ctx context.Context, userID string, kind *domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data.
// The Guarded variants lock the owning user's ledger, load the active history,
// run the authorize callback over it, and apply the change only when the
// callback returns nil. Everything happens in a single database transaction.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction without any balance check.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionGuarded persists a new transaction after the authorize
	// callback approves it against the user's current history.
	SaveTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize AuthorizeFunc) error

	// UpdateTransactionGuarded updates an existing transaction after the
	// authorize callback approves the change against the user's current history.
	UpdateTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize AuthorizeFunc) error
}

// TransactionLifecycleManager defines operations for managing transaction lifecycle
type TransactionLifecycleManager interface {
	// MarkTransactionDeletedGuarded marks a transaction as deleted (soft delete)
	// after the authorize callback approves the removal against the user's
	// current history.
	MarkTransactionDeletedGuarded(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize AuthorizeFunc) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLifecycleManager
	TransactionManager
}
