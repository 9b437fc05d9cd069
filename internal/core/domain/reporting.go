package domain

import "github.com/shopspring/decimal"

// SavingsSummary holds the aggregate figures shown on the admin overview.
type SavingsSummary struct {
	TotalUsers     int64           `json:"totalUsers"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	RecentSavings  decimal.Decimal `json:"recentSavings"` // Deposits within the trailing window
	AveragePerUser decimal.Decimal `json:"averagePerUser"`
}

// MonthlySavingsRow is one month of aggregated deposits.
type MonthlySavingsRow struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// TopSaverRow ranks a user by gross savings.
type TopSaverRow struct {
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	GrossSavings decimal.Decimal `json:"grossSavings"`
	EntryCount   int64           `json:"entryCount"`
	GoalProgress decimal.Decimal `json:"goalProgress"` // Percentage, capped at 100
}
