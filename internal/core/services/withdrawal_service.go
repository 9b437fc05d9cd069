package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/savesphere/savings_tracker_app/internal/apperrors"
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/savesphere/savings_tracker_app/internal/core/ledger"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

// withdrawalService implements the WithdrawalSvcFacade. Withdrawals are
// stored as DEBIT transactions and must pass ledger authorization before
// they are persisted.
type withdrawalService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
}

// NewWithdrawalService creates a new withdrawal service instance.
func NewWithdrawalService(txnRepo portsrepo.TransactionRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{
		BaseService: BaseService{UserReader: userRepo},
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// CreateWithdrawal records a withdrawal after authorizing it against the
// user's available balance. The authorization runs under the user's ledger
// lock, so concurrent withdrawals cannot both succeed against the same funds.
func (s *withdrawalService) CreateWithdrawal(ctx context.Context, userID string, req dto.CreateWithdrawalRequest, requestingUserID string) (*domain.Transaction, error) {
	if err := s.RequireSelfOrAdmin(ctx, userID, requestingUserID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %s for withdrawal: %w", userID, err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          domain.Debit,
		Amount:        req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}

	err := s.txnRepo.SaveTransactionGuarded(ctx, txn, func(history []domain.Transaction) error {
		return ledger.AuthorizeDebit(history, req.Amount)
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) || errors.Is(err, ledger.ErrInvalidAmount) {
			s.LogInfo(ctx, "Withdrawal rejected",
				slog.String("target_user_id", userID),
				slog.String("amount", req.Amount.String()),
				slog.String("reason", err.Error()))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save withdrawal", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	s.LogInfo(ctx, "Withdrawal recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("target_user_id", userID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}

// GetWithdrawalByID retrieves a specific withdrawal by its ID.
func (s *withdrawalService) GetWithdrawalByID(ctx context.Context, withdrawalID string, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, withdrawalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load withdrawal %s: %w", withdrawalID, err)
	}
	if txn.Kind != domain.Debit {
		return nil, apperrors.ErrNotFound
	}
	if err := s.RequireSelfOrAdmin(ctx, txn.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListWithdrawals retrieves a paginated list of a user's withdrawals.
func (s *withdrawalService) ListWithdrawals(ctx context.Context, userID string, limit int, nextToken *string, requestingUserID string) ([]domain.Transaction, *string, error) {
	if err := s.RequireSelfOrAdmin(ctx, userID, requestingUserID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	kind := domain.Debit
	txns, token, err := s.txnRepo.ListTransactionsByUser(ctx, userID, &kind, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list withdrawals for user %s: %w", userID, err)
	}
	return txns, token, nil
}
