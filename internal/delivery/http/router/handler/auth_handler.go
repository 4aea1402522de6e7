// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "expensetracker/internal/delivery/context"
	"expensetracker/internal/delivery/http/cookie"
	"expensetracker/internal/delivery/http/response"
	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/service"
	"expensetracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload for account registration.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// loginRequest is the payload for logging in.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the account view returned to clients. The password hash
// never leaves the server.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// loginResponse carries the issued token alongside the account view. The same
// token also travels in the session cookie.
type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc            usecase.AuthUsecase
	tokenLifetime time.Duration
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
// The session cookie's lifetime always matches the issued token's.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:            uc,
		tokenLifetime: tokenSvc.TokenDuration(),
		logger:        logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login verifies credentials, issues a token and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(cookie.NewTokenCookie(output.AccessToken, h.tokenLifetime))

	return response.Success(c, http.StatusOK, loginResponse{
		Token: output.AccessToken,
		User:  toUserResponse(output.User),
	}, "Login successful")
}

// Me returns the account behind the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// Logout clears the session cookie. The token itself stays valid until its
// expiry; there is no server-side session to invalidate.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(cookie.ClearTokenCookie())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

func toUserResponse(user *entity.AuthUser) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
