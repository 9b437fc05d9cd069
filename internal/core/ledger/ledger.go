// Package ledger computes available balances from a user's transaction
// history and authorizes proposed withdrawals against them. It is stateless
// and performs no I/O: callers supply a consistent snapshot of the history
// and are responsible for persisting an accepted debit atomically with the
// check (see WithdrawalService).
package ledger

import (
	"errors"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a proposed or historical amount that is zero
	// or negative. Amounts are never coerced; direction is carried by the
	// transaction kind, not by sign.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds indicates a proposed debit exceeding the available
	// balance. No partial withdrawal is synthesized.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ComputeBalance returns the net available balance for a transaction
// history: sum of credits minus sum of debits. The result is independent of
// element order, and an empty history yields zero.
func ComputeBalance(transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		switch txn.Kind {
		case domain.Credit:
			balance = balance.Add(txn.Amount)
		case domain.Debit:
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// GrossSavings returns the sum of credit amounts only, ignoring
// withdrawals. Goal progress is measured against this figure: the goal
// tracks the total ever saved, not the current balance.
func GrossSavings(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Kind == domain.Credit {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// AuthorizeDebit decides whether a proposed withdrawal may proceed given
// the supplied history. It returns ErrInvalidAmount if the proposed amount
// (or any historical amount) is not strictly positive, and
// ErrInsufficientFunds if the proposal exceeds the available balance. A nil
// return means the debit is accepted; the caller must persist the new DEBIT
// before any concurrent read can observe a stale balance.
func AuthorizeDebit(transactions []domain.Transaction, proposedAmount decimal.Decimal) error {
	if proposedAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	for _, txn := range transactions {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}
	}

	available := ComputeBalance(transactions)
	if proposedAmount.GreaterThan(available) {
		return ErrInsufficientFunds
	}
	return nil
}

// GoalProgress returns the percentage of a savings goal reached, based on
// gross savings and capped at 100. A nil or non-positive goal yields zero.
func GoalProgress(transactions []domain.Transaction, goal *decimal.Decimal) decimal.Decimal {
	return GoalProgressFromGross(GrossSavings(transactions), goal)
}

// GoalProgressFromGross is GoalProgress for callers that already hold the
// gross savings figure, such as aggregate reports.
func GoalProgressFromGross(gross decimal.Decimal, goal *decimal.Decimal) decimal.Decimal {
	if goal == nil || goal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	progress := gross.Div(*goal).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}
