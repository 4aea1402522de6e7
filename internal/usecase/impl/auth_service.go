// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/repository"
	"expensetracker/internal/domain/service"
	"expensetracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account. Username and email conflicts are reported
// per field so the client can tell the user which one to change.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var created *entity.AuthUser
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		taken, err := userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err)
		}
		if taken {
			return domainerrors.ErrUsernameTaken
		}

		taken, err = userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err)
		}
		if taken {
			return domainerrors.ErrEmailTaken
		}

		user := &entity.AuthUser{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return err
			}

			return domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
		}

		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account registered",
		slog.Int64("userID", created.ID),
		slog.String("username", created.Username),
	)

	return &usecase.RegisterOutput{User: created}, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password both collapse into the same generic error; the response must
// not reveal which usernames exist.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.Username, user.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// CurrentUser resolves the account behind a verified principal.
func (s *authService) CurrentUser(ctx context.Context, principal service.Principal) (*entity.AuthUser, error) {
	user, err := s.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token outlived the account; treat it as no longer valid.
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	return user, nil
}
