package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/savesphere/savings_tracker_app/internal/apperrors"
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portsrepo "github.com/savesphere/savings_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/core/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func creditTxn(userID, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          domain.Credit,
		Amount:        amt(amount),
	}
}

func debitTxn(userID, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          domain.Debit,
		Amount:        amt(amount),
	}
}

type SavingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockUserRepo *MockUserRepository
	service      portssvc.SavingSvcFacade
	balanceSvc   portssvc.BalanceSvcFacade
}

func (suite *SavingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	svc := services.NewSavingService(suite.mockTxnRepo, suite.mockUserRepo)
	suite.service = svc
	suite.balanceSvc = svc
}

// --- CreateSaving Tests ---

func (suite *SavingServiceTestSuite) TestCreateSaving_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}
	req := dto.CreateSavingRequest{Amount: amt("100.00")}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID && txn.Kind == domain.Credit && txn.Amount.Equal(amt("100.00"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateSaving(ctx, userID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Credit, txn.Kind)
	suite.NotEmpty(txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *SavingServiceTestSuite) TestCreateSaving_NonPositiveAmount() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateSavingRequest{Amount: amt("0")}

	txn, err := suite.service.CreateSaving(ctx, userID, req, userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *SavingServiceTestSuite) TestCreateSaving_OtherUserForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	requestingUserID := uuid.NewString()
	requester := &domain.User{UserID: requestingUserID, Role: domain.RoleUser}
	req := dto.CreateSavingRequest{Amount: amt("50")}

	suite.mockUserRepo.On("FindUserByID", ctx, requestingUserID).Return(requester, nil).Once()

	txn, err := suite.service.CreateSaving(ctx, userID, req, requestingUserID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- GetSavingByID Tests ---

func (suite *SavingServiceTestSuite) TestGetSavingByID_WithdrawalNotAddressable() {
	ctx := context.Background()
	userID := uuid.NewString()
	withdrawal := debitTxn(userID, "10")

	suite.mockTxnRepo.On("FindTransactionByID", ctx, withdrawal.TransactionID).Return(&withdrawal, nil).Once()

	txn, err := suite.service.GetSavingByID(ctx, withdrawal.TransactionID, userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- ListSavings Tests ---

func (suite *SavingServiceTestSuite) TestListSavings_FiltersCredits() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Transaction{creditTxn(userID, "20"), creditTxn(userID, "30")}

	suite.mockTxnRepo.ListTransactionsByUserFn = func(ctx context.Context, gotUserID string, kind *domain.TransactionKind, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
		suite.Equal(userID, gotUserID)
		suite.Require().NotNil(kind)
		suite.Equal(domain.Credit, *kind)
		suite.Equal(20, limit)
		return expected, nil, nil
	}

	txns, token, err := suite.service.ListSavings(ctx, userID, 0, nil, userID)

	suite.Require().NoError(err)
	suite.Nil(token)
	suite.Len(txns, 2)
}

// --- UpdateSaving Tests ---

func (suite *SavingServiceTestSuite) TestUpdateSaving_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	saving := creditTxn(userID, "100")
	history := []domain.Transaction{saving, debitTxn(userID, "30")}
	newAmount := amt("80")
	req := dto.UpdateSavingRequest{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, saving.TransactionID).Return(&saving, nil).Once()
	suite.mockTxnRepo.UpdateTransactionGuardedFn = func(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
		suite.Equal(saving.TransactionID, txn.TransactionID)
		suite.True(txn.Amount.Equal(newAmount))
		// 80 - 30 = 50, still non-negative
		return authorize(history)
	}

	updated, err := suite.service.UpdateSaving(ctx, saving.TransactionID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SavingServiceTestSuite) TestUpdateSaving_RejectsOverdraw() {
	ctx := context.Background()
	userID := uuid.NewString()
	saving := creditTxn(userID, "100")
	history := []domain.Transaction{saving, debitTxn(userID, "80")}
	newAmount := amt("50")
	req := dto.UpdateSavingRequest{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, saving.TransactionID).Return(&saving, nil).Once()
	suite.mockTxnRepo.UpdateTransactionGuardedFn = func(ctx context.Context, txn domain.Transaction, authorize portsrepo.AuthorizeFunc) error {
		// 50 - 80 = -30, must be rejected
		return authorize(history)
	}

	updated, err := suite.service.UpdateSaving(ctx, saving.TransactionID, req, userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrWouldOverdraw)
}

// --- DeleteSaving Tests ---

func (suite *SavingServiceTestSuite) TestDeleteSaving_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	saving := creditTxn(userID, "40")
	other := creditTxn(userID, "100")
	history := []domain.Transaction{saving, other, debitTxn(userID, "50")}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, saving.TransactionID).Return(&saving, nil).Once()
	suite.mockTxnRepo.MarkTransactionDeletedGuardedFn = func(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize portsrepo.AuthorizeFunc) error {
		suite.Equal(saving.TransactionID, txn.TransactionID)
		suite.Equal(userID, deletedBy)
		// 100 - 50 = 50 without the deleted deposit, still fine
		return authorize(history)
	}

	err := suite.service.DeleteSaving(ctx, saving.TransactionID, userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SavingServiceTestSuite) TestDeleteSaving_RejectsOverdraw() {
	ctx := context.Background()
	userID := uuid.NewString()
	saving := creditTxn(userID, "100")
	history := []domain.Transaction{saving, debitTxn(userID, "80")}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, saving.TransactionID).Return(&saving, nil).Once()
	suite.mockTxnRepo.MarkTransactionDeletedGuardedFn = func(ctx context.Context, txn domain.Transaction, deletedAt time.Time, deletedBy string, authorize portsrepo.AuthorizeFunc) error {
		// Without the deposit the balance would be -80
		return authorize(history)
	}

	err := suite.service.DeleteSaving(ctx, saving.TransactionID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrWouldOverdraw)
}

// --- GetUserBalance Tests ---

func (suite *SavingServiceTestSuite) TestGetUserBalance_ComputesFromHistory() {
	ctx := context.Background()
	userID := uuid.NewString()
	goal := amt("200")
	user := &domain.User{UserID: userID, Role: domain.RoleUser, Goal: &goal}
	history := []domain.Transaction{
		creditTxn(userID, "100.00"),
		creditTxn(userID, "50.00"),
		debitTxn(userID, "30.00"),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByUserID", ctx, userID).Return(history, nil).Once()

	balance, err := suite.balanceSvc.GetUserBalance(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.True(balance.Balance.Equal(amt("120.00")), "balance was %s", balance.Balance)
	suite.True(balance.GrossSavings.Equal(amt("150.00")), "gross was %s", balance.GrossSavings)
	suite.True(balance.GoalProgress.Equal(amt("75")), "progress was %s", balance.GoalProgress)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *SavingServiceTestSuite) TestGetUserBalance_EmptyHistoryIsZero() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByUserID", ctx, userID).Return([]domain.Transaction{}, nil).Once()

	balance, err := suite.balanceSvc.GetUserBalance(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.True(balance.Balance.IsZero())
	suite.True(balance.GrossSavings.IsZero())
	suite.True(balance.GoalProgress.IsZero())
}

func TestSavingService(t *testing.T) {
	suite.Run(t, new(SavingServiceTestSuite))
}
