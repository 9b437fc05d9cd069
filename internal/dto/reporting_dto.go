package dto

import (
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportParams defines query parameters for the monthly savings report.
type MonthlyReportParams struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=60"`
}

// TopSaversParams defines query parameters for the top savers leaderboard.
type TopSaversParams struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1"`
}

// SavingsSummaryResponse defines the community-wide savings totals.
type SavingsSummaryResponse struct {
	TotalUsers     int64           `json:"totalUsers"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	RecentSavings  decimal.Decimal `json:"recentSavings"`
	AveragePerUser decimal.Decimal `json:"averagePerUser"`
}

// MonthlySavingsRowResponse defines deposit totals for a single month.
type MonthlySavingsRowResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// MonthlySavingsResponse wraps the per-month deposit rows.
type MonthlySavingsResponse struct {
	Months []MonthlySavingsRowResponse `json:"months"`
}

// TopSaverRowResponse defines a single entry on the top savers leaderboard.
type TopSaverRowResponse struct {
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	GrossSavings decimal.Decimal `json:"grossSavings"`
	EntryCount   int64           `json:"entryCount"`
	GoalProgress decimal.Decimal `json:"goalProgress"`
}

// TopSaversResponse wraps the top savers leaderboard.
type TopSaversResponse struct {
	TopSavers []TopSaverRowResponse `json:"topSavers"`
}

// ToSavingsSummaryResponse converts a domain.SavingsSummary to its DTO.
func ToSavingsSummaryResponse(s *domain.SavingsSummary) SavingsSummaryResponse {
	return SavingsSummaryResponse{
		TotalUsers:     s.TotalUsers,
		TotalSavings:   s.TotalSavings,
		RecentSavings:  s.RecentSavings,
		AveragePerUser: s.AveragePerUser,
	}
}

// ToMonthlySavingsResponse converts domain monthly rows to their DTO.
func ToMonthlySavingsResponse(rows []domain.MonthlySavingsRow) MonthlySavingsResponse {
	months := make([]MonthlySavingsRowResponse, len(rows))
	for i, row := range rows {
		months[i] = MonthlySavingsRowResponse{
			Month: row.Month,
			Total: row.Total,
			Count: row.Count,
		}
	}
	return MonthlySavingsResponse{Months: months}
}

// ToTopSaversResponse converts domain top saver rows to their DTO.
func ToTopSaversResponse(rows []domain.TopSaverRow) TopSaversResponse {
	topSavers := make([]TopSaverRowResponse, len(rows))
	for i, row := range rows {
		topSavers[i] = TopSaverRowResponse{
			UserID:       row.UserID,
			Name:         row.Name,
			Email:        row.Email,
			GrossSavings: row.GrossSavings,
			EntryCount:   row.EntryCount,
			GoalProgress: row.GoalProgress,
		}
	}
	return TopSaversResponse{TopSavers: topSavers}
}
