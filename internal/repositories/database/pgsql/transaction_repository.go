package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/savesphere/savings_tracker_app/internal/apperrors"
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	"github.com/savesphere/savings_tracker_app/internal/models"
	"github.com/savesphere/savings_tracker_app/internal/utils/mapping"
	"github.com/savesphere/savings_tracker_app/internal/utils/pagination"
)

const transactionColumns = `transaction_id, user_id, kind, amount, description,
	created_at, created_by, last_updated_at, last_updated_by`

// querier and execer are satisfied by both *pgxpool.Pool and pgx.Tx, so the
// same helpers serve plain and guarded code paths.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Kind,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND deleted_at IS NULL;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.findHistory(ctx, r.Pool, userID)
}

// findHistory loads a user's full active transaction history, oldest first.
// It runs against either the pool or an open transaction.
func (r *PgxTransactionRepository) findHistory(ctx context.Context, q querier, userID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND deleted_at IS NULL
        ORDER BY created_at ASC, transaction_id ASC;`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction history: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, kind *domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND deleted_at IS NULL`
	args := []any{userID}

	if kind != nil {
		args = append(args, string(*kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		args = append(args, tokenTime, tokenID)
		query += fmt.Sprintf(" AND (created_at, transaction_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(modelTxns), newNextToken, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.insertTransaction(ctx, r.Pool, txn)
}

func (r *PgxTransactionRepository) insertTransaction(ctx context.Context, e execer, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, kind, amount, description,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := e.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Kind,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// lockUserLedger takes the row lock that serializes all guarded changes to a
// user's transaction history.
func (r *PgxTransactionRepository) lockUserLedger(ctx context.Context, tx pgx.Tx, userID string) error {
	var lockedID string
	err := tx.QueryRow(ctx, `SELECT user_id FROM users WHERE user_id = $1 AND deleted_at IS NULL FOR UPDATE;`, userID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock user ledger: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) SaveTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockUserLedger(ctx, tx, txn.UserID); err != nil {
		return err
	}

	history, err := r.findHistory(ctx, tx, txn.UserID)
	if err != nil {
		return err
	}
	if err := authorize(history); err != nil {
		return err
	}

	if err := r.insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) UpdateTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockUserLedger(ctx, tx, txn.UserID); err != nil {
		return err
	}

	history, err := r.findHistory(ctx, tx, txn.UserID)
	if err != nil {
		return err
	}
	if err := authorize(history); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	query := `
        UPDATE transactions
        SET amount = $1, description = $2, last_updated_at = $3, last_updated_by = $4
        WHERE transaction_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query,
		m.Amount,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) MarkTransactionDeletedGuarded(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize portsrepo.AuthorizeFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockUserLedger(ctx, tx, txn.UserID); err != nil {
		return err
	}

	history, err := r.findHistory(ctx, tx, txn.UserID)
	if err != nil {
		return err
	}
	if err := authorize(history); err != nil {
		return err
	}

	query := `
        UPDATE transactions
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE transaction_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, deletedAt, deletedBy, txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
