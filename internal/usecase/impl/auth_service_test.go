package impl

import (
	"context"
	"testing"

	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/repository"
	"expensetracker/internal/domain/service"
	mockRepo "expensetracker/internal/mocks/repository"
	mockSvc "expensetracker/internal/mocks/service"
	"expensetracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return svc, txManager, userRepo, hasher, tokenSvc
}

// runTransaction makes the mocked transaction manager execute the unit of
// work against the given repository, the way the real one would.
func runTransaction(txManager *mockRepo.MockTransactionManager, t *testing.T, userRepo repository.UserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, txManager, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("correct horse battery").Return("$2a$12$hash", nil)
	runTransaction(txManager, t, userRepo)

	userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuthUser")).
		RunAndReturn(func(_ context.Context, user *entity.AuthUser) error {
			user.ID = 7

			return nil
		})

	output, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "$2a$12$hash", output.User.PasswordHash)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, txManager, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("password123").Return("$2a$12$hash", nil)
	runTransaction(txManager, t, userRepo)

	userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
	assert.Equal(t, "Username already exists!", appErr.Message())
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, txManager, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("password123").Return("$2a$12$hash", nil)
	runTransaction(txManager, t, userRepo)

	userRepo.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
	userRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
	assert.Equal(t, "Email already exists!", appErr.Message())
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, userRepo, hasher, tokenSvc := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.AuthUser{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
	}

	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Check("password123", "$2a$12$hash").Return(true)
	tokenSvc.EXPECT().Issue("alice", int64(42)).Return("signed.token.value", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.AccessToken)
	assert.Equal(t, int64(42), output.User.ID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.AuthUser{ID: 42, Username: "alice", PasswordHash: "$2a$12$hash"}

	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Check("wrong", "$2a$12$hash").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// An unknown username and a wrong password must be indistinguishable to the
// caller, so usernames cannot be enumerated through the login endpoint.
func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, userRepo, hasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	_, unknownUserErr := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "pw"})

	user := &entity.AuthUser{ID: 1, Username: "alice", PasswordHash: "$2a$12$hash"}
	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Check("pw", "$2a$12$hash").Return(false)
	_, wrongPasswordErr := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw"})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	svc, _, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.AuthUser{ID: 42, Username: "alice", Email: "alice@example.com"}
	userRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)

	got, err := svc.CurrentUser(ctx, service.Principal{UserID: 42, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	svc, _, userRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.CurrentUser(ctx, service.Principal{UserID: 42, Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
