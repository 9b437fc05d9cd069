package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/savesphere/savings_tracker_app/internal/apperrors"
	"github.com/savesphere/savings_tracker_app/internal/core/domain"
	portssvc "github.com/savesphere/savings_tracker_app/internal/core/ports/services"
	"github.com/savesphere/savings_tracker_app/internal/core/services"
	"github.com/savesphere/savings_tracker_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	email := "saver@example.com"
	password := "password123"
	name := "Test Saver"

	req := dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == email && user.Name == name &&
			user.PasswordHash != "" && user.PasswordHash != password &&
			user.Role == domain.RoleUser
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(email, createdUser.Email)
	suite.Equal(name, createdUser.Name)
	suite.NotEmpty(createdUser.UserID)
	suite.NotEqual(password, createdUser.PasswordHash)
	suite.Equal(domain.RoleUser, createdUser.Role)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	email := "taken@example.com"
	existing := &domain.User{UserID: uuid.NewString(), Email: email}

	req := dto.CreateUserRequest{
		Name:     "Someone Else",
		Email:    email,
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	email := "saver@example.com"
	expectedErr := assert.AnError

	req := dto.CreateUserRequest{
		Name:     "Test Saver",
		Email:    email,
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	limit, offset := 10, 0
	expectedUsers := []domain.User{{UserID: uuid.NewString()}, {UserID: uuid.NewString()}}

	suite.mockUserRepo.On("FindUsers", ctx, limit, offset).Return(expectedUsers, nil).Once()

	users, err := suite.service.ListUsers(ctx, limit, offset)

	suite.Require().NoError(err)
	suite.Len(users, len(expectedUsers))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_ClampsLimit() {
	ctx := context.Background()
	expectedUsers := []domain.User{}

	// Asking for more than the cap should be clamped to 100.
	suite.mockUserRepo.On("FindUsers", ctx, 100, 0).Return(expectedUsers, nil).Once()

	users, err := suite.service.ListUsers(ctx, 5000, 0)

	suite.Require().NoError(err)
	suite.Empty(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_Empty() {
	ctx := context.Background()
	limit, offset := 5, 10
	var expectedUsers []domain.User

	suite.mockUserRepo.On("FindUsers", ctx, limit, offset).Return(expectedUsers, nil).Once()

	users, err := suite.service.ListUsers(ctx, limit, offset)

	suite.Require().NoError(err)
	suite.Require().NotNil(users)
	suite.Empty(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_SelfSuccess() {
	ctx := context.Background()
	userID := uuid.NewString()
	newName := "Updated Name"
	req := dto.UpdateUserRequest{Name: &newName}
	originalUser := &domain.User{
		UserID: userID,
		Name:   "Original Name",
		Role:   domain.RoleUser,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now().Add(-time.Hour),
			LastUpdatedBy: "somebodyElse",
		},
	}
	originalTimestamp := originalUser.LastUpdatedAt

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(originalUser, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		userArg := args.Get(1).(domain.User)
		suite.Equal(userID, userArg.UserID)
		suite.Equal(newName, userArg.Name)
		suite.Equal(userID, userArg.LastUpdatedBy)
		suite.True(userArg.LastUpdatedAt.After(originalTimestamp))
	})

	user, err := suite.service.UpdateUser(ctx, userID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	requestingUserID := uuid.NewString()
	newName := "Updated Name"
	req := dto.UpdateUserRequest{Name: &newName}
	requester := &domain.User{UserID: requestingUserID, Role: domain.RoleUser}

	// Only the admin check should hit the repo.
	suite.mockUserRepo.On("FindUserByID", ctx, requestingUserID).Return(requester, nil).Once()

	user, err := suite.service.UpdateUser(ctx, targetUserID, req, requestingUserID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_AdminUpdatesOther() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	adminUserID := uuid.NewString()
	newName := "Renamed By Admin"
	req := dto.UpdateUserRequest{Name: &newName}
	admin := &domain.User{UserID: adminUserID, Role: domain.RoleAdmin}
	target := &domain.User{UserID: targetUserID, Name: "Original", Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, adminUserID).Return(admin, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetUserID).Return(target, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, targetUserID, req, adminUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.Equal(adminUserID, user.LastUpdatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfSuccess() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	email := "saver@example.com"
	password := "password123"

	// Register first so a real bcrypt hash is stored.
	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	var savedUser domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		savedUser = args.Get(1).(domain.User)
	})
	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Name: "Saver", Email: email, Password: password})
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&savedUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, password)

	suite.Require().NoError(err)
	suite.Equal(savedUser.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	email := "saver@example.com"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	var savedUser domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		savedUser = args.Get(1).(domain.User)
	})
	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Name: "Saver", Email: email, Password: "password123"})
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&savedUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	email := "unknown@example.com"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateViaGoogle Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateViaGoogle_ExistingUser() {
	ctx := context.Background()
	email := "google@example.com"
	existing := &domain.User{UserID: uuid.NewString(), Email: email}
	info := domain.GoogleUserInfo{Email: email, EmailVerified: true, Name: "Google User"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(existing, nil).Once()

	user, err := suite.service.AuthenticateViaGoogle(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateViaGoogle_ProvisionsNewUser() {
	ctx := context.Background()
	email := "new-google@example.com"
	info := domain.GoogleUserInfo{Email: email, EmailVerified: true, Name: "New Google User"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == email && user.Name == info.Name && user.PasswordHash == "" && user.Role == domain.RoleUser
	})).Return(nil).Once()

	user, err := suite.service.AuthenticateViaGoogle(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(email, user.Email)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateViaGoogle_UnverifiedEmail() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Email: "shady@example.com", EmailVerified: false}

	user, err := suite.service.AuthenticateViaGoogle(ctx, info)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
