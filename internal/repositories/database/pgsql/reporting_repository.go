package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/savesphere/savings_tracker_app/internal/core/ledger"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetSavingsSummary(ctx context.Context, recentSince time.Time) (*domain.SavingsSummary, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users WHERE deleted_at IS NULL) AS total_users,
            COALESCE(SUM(amount), 0) AS total_savings,
            COALESCE(SUM(amount) FILTER (WHERE created_at >= $1), 0) AS recent_savings
        FROM transactions
        WHERE kind = 'CREDIT' AND deleted_at IS NULL;
    `
	var summary domain.SavingsSummary
	err := r.Pool.QueryRow(ctx, query, recentSince).Scan(
		&summary.TotalUsers,
		&summary.TotalSavings,
		&summary.RecentSavings,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings summary: %w", err)
	}

	summary.AveragePerUser = decimal.Zero
	if summary.TotalUsers > 0 {
		summary.AveragePerUser = summary.TotalSavings.DivRound(decimal.NewFromInt(summary.TotalUsers), 2)
	}

	return &summary, nil
}

func (r *PgxReportingRepository) GetMonthlySavings(ctx context.Context, from time.Time) ([]domain.MonthlySavingsRow, error) {
	query := `
        SELECT to_char(created_at, 'YYYY-MM') AS month,
               COALESCE(SUM(amount), 0) AS total,
               COUNT(*) AS entry_count
        FROM transactions
        WHERE kind = 'CREDIT' AND deleted_at IS NULL AND created_at >= $1
        GROUP BY 1
        ORDER BY 1;
    `
	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly savings: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlySavingsRow{}
	for rows.Next() {
		var row domain.MonthlySavingsRow
		if err := rows.Scan(&row.Month, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly savings row: %w", err)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly savings rows: %w", rows.Err())
	}

	return result, nil
}

func (r *PgxReportingRepository) GetTopSavers(ctx context.Context, limit int) ([]domain.TopSaverRow, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
        SELECT u.user_id, u.name, u.email, u.goal,
               COALESCE(SUM(t.amount), 0) AS gross_savings,
               COUNT(t.transaction_id) AS entry_count
        FROM users u
        JOIN transactions t
            ON t.user_id = u.user_id AND t.kind = 'CREDIT' AND t.deleted_at IS NULL
        WHERE u.deleted_at IS NULL
        GROUP BY u.user_id, u.name, u.email, u.goal
        ORDER BY gross_savings DESC
        LIMIT $1;
    `
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top savers: %w", err)
	}
	defer rows.Close()

	result := []domain.TopSaverRow{}
	for rows.Next() {
		var row domain.TopSaverRow
		var goal decimal.NullDecimal
		if err := rows.Scan(&row.UserID, &row.Name, &row.Email, &goal, &row.GrossSavings, &row.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan top saver row: %w", err)
		}
		if goal.Valid {
			row.GoalProgress = ledger.GoalProgressFromGross(row.GrossSavings, &goal.Decimal)
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top saver rows: %w", rows.Err())
	}

	return result, nil
}
