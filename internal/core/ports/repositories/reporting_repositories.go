package repositories

import (
	"context"
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving aggregate savings data
type ReportingRepository interface {
	// GetSavingsSummary retrieves community-wide savings totals. Deposits created
	// at or after recentSince count towards the recent savings figure.
	GetSavingsSummary(ctx context.Context, recentSince time.Time) (*domain.SavingsSummary, error)

	// GetMonthlySavings retrieves per-month deposit totals and counts for months
	// starting at from, ordered chronologically.
	GetMonthlySavings(ctx context.Context, from time.Time) ([]domain.MonthlySavingsRow, error)

	// GetTopSavers retrieves the users with the highest gross deposits.
	GetTopSavers(ctx context.Context, limit int) ([]domain.TopSaverRow, error)
}
