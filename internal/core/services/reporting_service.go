package services

import (
	"context"
	"fmt"
	"time"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
)

const (
	// recentSavingsWindowDays is the lookback window for the "recent savings"
	// figure on the summary report.
	recentSavingsWindowDays = 30

	defaultReportMonths = 12
	defaultTopSavers    = 10
	maxTopSavers        = 50
)

// reportingService implements the ReportingService interface. All reports
// are admin-only.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service instance.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, userRepo portsrepo.UserRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		BaseService:   BaseService{UserReader: userRepo},
		reportingRepo: reportingRepo,
	}
}

// GetSavingsSummary retrieves community-wide savings totals.
func (s *reportingService) GetSavingsSummary(ctx context.Context, requestingUserID string) (*domain.SavingsSummary, error) {
	if err := s.RequireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	recentSince := time.Now().AddDate(0, 0, -recentSavingsWindowDays)
	summary, err := s.reportingRepo.GetSavingsSummary(ctx, recentSince)
	if err != nil {
		s.LogError(ctx, err, "Failed to build savings summary")
		return nil, fmt.Errorf("failed to get savings summary: %w", err)
	}
	return summary, nil
}

// GetMonthlySavings retrieves per-month deposit totals for the trailing
// given number of months, ordered chronologically.
func (s *reportingService) GetMonthlySavings(ctx context.Context, months int, requestingUserID string) ([]domain.MonthlySavingsRow, error) {
	if err := s.RequireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	if months <= 0 {
		months = defaultReportMonths
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	rows, err := s.reportingRepo.GetMonthlySavings(ctx, from)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly savings report")
		return nil, fmt.Errorf("failed to get monthly savings: %w", err)
	}
	if rows == nil {
		return []domain.MonthlySavingsRow{}, nil
	}
	return rows, nil
}

// GetTopSavers retrieves the users with the highest gross deposits.
func (s *reportingService) GetTopSavers(ctx context.Context, limit int, requestingUserID string) ([]domain.TopSaverRow, error) {
	if err := s.RequireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopSavers
	}
	if limit > maxTopSavers {
		limit = maxTopSavers
	}

	rows, err := s.reportingRepo.GetTopSavers(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to build top savers report")
		return nil, fmt.Errorf("failed to get top savers: %w", err)
	}
	if rows == nil {
		return []domain.TopSaverRow{}, nil
	}
	return rows, nil
}
