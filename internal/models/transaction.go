package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a ledger entry.
// Amount is always positive; the kind column carries direction.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Kind          string          `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	Description   sql.NullString  `db:"description"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
