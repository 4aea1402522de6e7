// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"expensetracker/internal/domain/entity"
	"expensetracker/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.AuthUser
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.AuthUser
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CurrentUser loads the full account behind a verified principal.
	CurrentUser(ctx context.Context, principal service.Principal) (*entity.AuthUser, error)
}
