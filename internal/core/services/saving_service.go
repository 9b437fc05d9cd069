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
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

// savingService implements SavingSvcFacade and BalanceSvcFacade over the
// transaction repository. Deposits are stored as CREDIT transactions.
type savingService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
}

// NewSavingService creates a new saving service instance.
func NewSavingService(txnRepo portsrepo.TransactionRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) *savingService {
	return &savingService{
		BaseService: BaseService{UserReader: userRepo},
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// CreateSaving records a new deposit for a user.
func (s *savingService) CreateSaving(ctx context.Context, userID string, req dto.CreateSavingRequest, requestingUserID string) (*domain.Transaction, error) {
	if err := s.RequireSelfOrAdmin(ctx, userID, requestingUserID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %s for deposit: %w", userID, err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          domain.Credit,
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

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save deposit", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("target_user_id", userID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}

// GetSavingByID retrieves a specific deposit by its ID.
func (s *savingService) GetSavingByID(ctx context.Context, savingID string, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.findSaving(ctx, savingID)
	if err != nil {
		return nil, err
	}
	if err := s.RequireSelfOrAdmin(ctx, txn.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListSavings retrieves a paginated list of a user's deposits.
func (s *savingService) ListSavings(ctx context.Context, userID string, limit int, nextToken *string, requestingUserID string) ([]domain.Transaction, *string, error) {
	if err := s.RequireSelfOrAdmin(ctx, userID, requestingUserID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	kind := domain.Credit
	txns, token, err := s.txnRepo.ListTransactionsByUser(ctx, userID, &kind, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deposits for user %s: %w", userID, err)
	}
	return txns, token, nil
}

// UpdateSaving amends a deposit's amount or description. The change is rejected
// with apperrors.ErrWouldOverdraw when the amended history would leave the
// user's balance negative.
func (s *savingService) UpdateSaving(ctx context.Context, savingID string, req dto.UpdateSavingRequest, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.findSaving(ctx, savingID)
	if err != nil {
		return nil, err
	}
	if err := s.RequireSelfOrAdmin(ctx, txn.UserID, requestingUserID); err != nil {
		return nil, err
	}

	updated := *txn
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = requestingUserID

	err = s.txnRepo.UpdateTransactionGuarded(ctx, updated, func(history []domain.Transaction) error {
		prospective := make([]domain.Transaction, 0, len(history))
		for _, h := range history {
			if h.TransactionID == updated.TransactionID {
				prospective = append(prospective, updated)
				continue
			}
			prospective = append(prospective, h)
		}
		if ledger.ComputeBalance(prospective).IsNegative() {
			return apperrors.ErrWouldOverdraw
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrWouldOverdraw) {
			return nil, apperrors.ErrWouldOverdraw
		}
		s.LogError(ctx, err, "Failed to update deposit", slog.String("transaction_id", savingID))
		return nil, fmt.Errorf("failed to update deposit %s: %w", savingID, err)
	}

	return &updated, nil
}

// DeleteSaving marks a deposit as deleted. The removal is rejected with
// apperrors.ErrWouldOverdraw when the remaining history would leave the
// user's balance negative.
func (s *savingService) DeleteSaving(ctx context.Context, savingID string, requestingUserID string) error {
	txn, err := s.findSaving(ctx, savingID)
	if err != nil {
		return err
	}
	if err := s.RequireSelfOrAdmin(ctx, txn.UserID, requestingUserID); err != nil {
		return err
	}

	err = s.txnRepo.MarkTransactionDeletedGuarded(ctx, *txn, time.Now(), requestingUserID, func(history []domain.Transaction) error {
		remaining := make([]domain.Transaction, 0, len(history))
		for _, h := range history {
			if h.TransactionID == txn.TransactionID {
				continue
			}
			remaining = append(remaining, h)
		}
		if ledger.ComputeBalance(remaining).IsNegative() {
			return apperrors.ErrWouldOverdraw
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrWouldOverdraw) {
			return apperrors.ErrWouldOverdraw
		}
		s.LogError(ctx, err, "Failed to delete deposit", slog.String("transaction_id", savingID))
		return fmt.Errorf("failed to delete deposit %s: %w", savingID, err)
	}

	s.LogInfo(ctx, "Deposit deleted", slog.String("transaction_id", savingID))
	return nil
}

// GetUserBalance computes the user's available balance, gross savings and
// goal progress from their full transaction history.
func (s *savingService) GetUserBalance(ctx context.Context, userID string, requestingUserID string) (*domain.UserBalance, error) {
	if err := s.RequireSelfOrAdmin(ctx, userID, requestingUserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %s for balance: %w", userID, err)
	}

	history, err := s.txnRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history for user %s: %w", userID, err)
	}

	return &domain.UserBalance{
		UserID:       userID,
		Balance:      ledger.ComputeBalance(history),
		GrossSavings: ledger.GrossSavings(history),
		GoalProgress: ledger.GoalProgress(history, user.Goal),
	}, nil
}

// findSaving loads a transaction and verifies it is a deposit. Withdrawals
// are not addressable through the savings endpoints.
func (s *savingService) findSaving(ctx context.Context, savingID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, savingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load deposit %s: %w", savingID, err)
	}
	if txn.Kind != domain.Credit {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}
