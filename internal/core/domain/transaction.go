package domain

import "github.com/shopspring/decimal"

// TransactionKind indicates whether a transaction is a Credit (savings
// deposit) or a Debit (withdrawal). Direction is carried by the kind, not
// by the sign of the amount.
type TransactionKind string

const (
	Credit TransactionKind = "CREDIT"
	Debit  TransactionKind = "DEBIT"
)

// Transaction represents a single ledger entry against a user's savings.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID (Not Null)
	Kind          TransactionKind `json:"kind"`          // CREDIT or DEBIT (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Description   string          `json:"description"`   // Nullable free text
	AuditFields
}
