package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn              func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	FindUsersFn                 func(ctx context.Context, limit, offset int) ([]domain.User, error)
	SaveUserFn                  func(ctx context.Context, user domain.User) error
	UpdateUserFn                func(ctx context.Context, user domain.User) error
	UpdateRefreshTokenDetailsFn func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshTokenDetailsFn  func(ctx context.Context, userID string) error
	MarkUserDeletedFn           func(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenDetails(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if m.UpdateRefreshTokenDetailsFn != nil {
		return m.UpdateRefreshTokenDetailsFn(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	}
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenDetails(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenDetailsFn != nil {
		return m.ClearRefreshTokenDetailsFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (m *MockUserRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

func (m *MockUserRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock TransactionRepository (based on TransactionRepositoryFacade) ---
type MockTransactionRepository struct {
	mock.Mock
	FindTransactionByIDFn           func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionsByUserIDFn      func(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListTransactionsByUserFn        func(ctx context.Context, userID string, kind *domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	SaveTransactionFn               func(ctx context.Context, txn domain.Transaction) error
	SaveTransactionGuardedFn        func(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error
	UpdateTransactionGuardedFn      func(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error
	MarkTransactionDeletedGuardedFn func(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize portsrepo.AuthorizeFunc) error
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.FindTransactionsByUserIDFn != nil {
		return m.FindTransactionsByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, kind *domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if m.ListTransactionsByUserFn != nil {
		return m.ListTransactionsByUserFn(ctx, userID, kind, limit, nextToken)
	}
	args := m.Called(ctx, userID, kind, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
	if m.SaveTransactionGuardedFn != nil {
		return m.SaveTransactionGuardedFn(ctx, txn, authorize)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionGuarded(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
	if m.UpdateTransactionGuardedFn != nil {
		return m.UpdateTransactionGuardedFn(ctx, txn, authorize)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeletedGuarded(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize portsrepo.AuthorizeFunc) error {
	if m.MarkTransactionDeletedGuardedFn != nil {
		return m.MarkTransactionDeletedGuardedFn(ctx, txn, deletedAt, deletedBy, authorize)
	}
	args := m.Called(ctx, txn, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetSavingsSummary(ctx context.Context, recentSince time.Time) (*domain.SavingsSummary, error) {
	args := m.Called(ctx, recentSince)
	var summary *domain.SavingsSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.SavingsSummary)
	}
	return summary, args.Error(1)
}

func (m *MockReportingRepository) GetMonthlySavings(ctx context.Context, from time.Time) ([]domain.MonthlySavingsRow, error) {
	args := m.Called(ctx, from)
	var rows []domain.MonthlySavingsRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.MonthlySavingsRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) GetTopSavers(ctx context.Context, limit int) ([]domain.TopSaverRow, error) {
	args := m.Called(ctx, limit)
	var rows []domain.TopSaverRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.TopSaverRow)
	}
	return rows, args.Error(1)
}
