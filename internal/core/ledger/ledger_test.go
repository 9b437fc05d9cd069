package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	"github.com/savesphere/savings_tracker_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        "user-1",
		Kind:          kind,
		Amount:        decimal.RequireFromString(amount),
	}
}

func TestComputeBalance_EmptyHistoryIsZero(t *testing.T) {
	assert.True(t, ledger.ComputeBalance(nil).IsZero())
	assert.True(t, ledger.ComputeBalance([]domain.Transaction{}).IsZero())
}

func TestComputeBalance_CreditsMinusDebits(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Credit, "50.00"),
		txn(domain.Debit, "30.00"),
	}

	assert.True(t, ledger.ComputeBalance(history).Equal(decimal.RequireFromString("120.00")))
}

func TestComputeBalance_OrderIndependent(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "10.10"),
		txn(domain.Debit, "3.33"),
		txn(domain.Credit, "0.01"),
		txn(domain.Debit, "1.99"),
		txn(domain.Credit, "250.00"),
	}
	want := ledger.ComputeBalance(history)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.Transaction, len(history))
		copy(shuffled, history)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.True(t, ledger.ComputeBalance(shuffled).Equal(want))
	}
}

func TestComputeBalance_Idempotent(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Debit, "40.00"),
	}

	first := ledger.ComputeBalance(history)
	second := ledger.ComputeBalance(history)
	assert.True(t, first.Equal(second))
}

func TestComputeBalance_NoCentDrift(t *testing.T) {
	// 0.1 added ten times must be exactly 1, which binary floats get wrong.
	history := make([]domain.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, txn(domain.Credit, "0.10"))
	}

	assert.True(t, ledger.ComputeBalance(history).Equal(decimal.NewFromInt(1)))
}

func TestAuthorizeDebit_AcceptsUpToAvailable(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Credit, "50.00"),
		txn(domain.Debit, "30.00"),
	}

	require.NoError(t, ledger.AuthorizeDebit(history, decimal.RequireFromString("120.00")))
	require.NoError(t, ledger.AuthorizeDebit(history, decimal.RequireFromString("0.01")))
}

func TestAuthorizeDebit_RejectsOverdraw(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Credit, "50.00"),
		txn(domain.Debit, "30.00"),
	}

	err := ledger.AuthorizeDebit(history, decimal.RequireFromString("120.01"))
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestAuthorizeDebit_AcceptedImpliesNonNegativeBalance(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "75.50"),
		txn(domain.Debit, "20.25"),
	}
	proposed := decimal.RequireFromString("55.25")

	require.NoError(t, ledger.AuthorizeDebit(history, proposed))
	remaining := ledger.ComputeBalance(history).Sub(proposed)
	assert.False(t, remaining.IsNegative())
}

func TestAuthorizeDebit_RejectsNonPositiveAmounts(t *testing.T) {
	history := []domain.Transaction{txn(domain.Credit, "100.00")}

	assert.ErrorIs(t, ledger.AuthorizeDebit(history, decimal.Zero), ledger.ErrInvalidAmount)
	assert.ErrorIs(t, ledger.AuthorizeDebit(history, decimal.NewFromInt(-5)), ledger.ErrInvalidAmount)
	// Regardless of history.
	assert.ErrorIs(t, ledger.AuthorizeDebit(nil, decimal.Zero), ledger.ErrInvalidAmount)
}

func TestAuthorizeDebit_RejectsMalformedHistory(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Credit, "-1.00"),
	}

	err := ledger.AuthorizeDebit(history, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestAuthorizeDebit_EmptyHistoryRejectsAnyDebit(t *testing.T) {
	err := ledger.AuthorizeDebit(nil, decimal.RequireFromString("0.01"))
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestGrossSavings_IgnoresDebits(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "100.00"),
		txn(domain.Debit, "60.00"),
		txn(domain.Credit, "25.00"),
	}

	assert.True(t, ledger.GrossSavings(history).Equal(decimal.RequireFromString("125.00")))
}

func TestGoalProgress_GrossOfWithdrawalsAndCapped(t *testing.T) {
	history := []domain.Transaction{
		txn(domain.Credit, "50.00"),
		txn(domain.Debit, "50.00"), // Withdrawals do not reduce progress
	}

	goal := decimal.NewFromInt(200)
	assert.True(t, ledger.GoalProgress(history, &goal).Equal(decimal.NewFromInt(25)))

	smallGoal := decimal.NewFromInt(40)
	assert.True(t, ledger.GoalProgress(history, &smallGoal).Equal(decimal.NewFromInt(100)))
}

func TestGoalProgress_NoGoalIsZero(t *testing.T) {
	history := []domain.Transaction{txn(domain.Credit, "50.00")}

	assert.True(t, ledger.GoalProgress(history, nil).IsZero())
	zero := decimal.Zero
	assert.True(t, ledger.GoalProgress(history, &zero).IsZero())
}
