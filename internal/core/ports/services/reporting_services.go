package services

import (
	"context"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
)

// ReportingService defines operations for aggregate savings reports.
// All reporting endpoints are admin-only.
type ReportingService interface {
	// GetSavingsSummary retrieves community-wide savings totals.
	GetSavingsSummary(ctx context.Context, requestingUserID string) (*domain.SavingsSummary, error)

	// GetMonthlySavings retrieves per-month deposit totals for the trailing
	// given number of months, ordered chronologically.
	GetMonthlySavings(ctx context.Context, months int, requestingUserID string) ([]domain.MonthlySavingsRow, error)

	// GetTopSavers retrieves the users with the highest gross deposits,
	// including their goal progress.
	GetTopSavers(ctx context.Context, limit int, requestingUserID string) ([]domain.TopSaverRow, error)
}
