package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expensetracker/internal/delivery/http/cookie"
	"expensetracker/internal/delivery/http/validator"
	"expensetracker/internal/domain/entity"
	"expensetracker/internal/domain/service"
	mockSvc "expensetracker/internal/mocks/service"
	"expensetracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	loginOutput *usecase.LoginOutput
	loginErr    error
}

func (s *stubAuthUsecase) Register(_ context.Context, _ usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) CurrentUser(_ context.Context, _ service.Principal) (*entity.AuthUser, error) {
	return nil, nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken: "signed.token.value",
			User:        &entity.AuthUser{ID: 42, Username: "alice", Email: "alice@example.com"},
		},
	}
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().TokenDuration().Return(15 * time.Minute)
	h := NewAuthHandler(uc, tokenSvc, newDiscardLogger())

	c, rec := newEchoContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, cookie.TokenCookieName, session.Name)
	assert.Equal(t, "signed.token.value", session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, session.SameSite)
	assert.Equal(t, 900, session.MaxAge)

	body := rec.Body.String()
	assert.Contains(t, body, "signed.token.value")
	assert.Contains(t, body, `"username":"alice"`)
	assert.NotContains(t, body, "password")
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().TokenDuration().Return(15 * time.Minute)
	h := NewAuthHandler(&stubAuthUsecase{}, tokenSvc, newDiscardLogger())

	c, rec := newEchoContext(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, cookie.TokenCookieName, session.Name)
	assert.Empty(t, session.Value)
	assert.Equal(t, -1, session.MaxAge)
}

func TestAuthHandler_Register_RejectsInvalidPayload(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().TokenDuration().Return(15 * time.Minute)
	h := NewAuthHandler(&stubAuthUsecase{}, tokenSvc, newDiscardLogger())

	// Password below the minimum length never reaches the usecase.
	c, _ := newEchoContext(t, http.MethodPost, "/auth/register", `{"username":"alice","email":"alice@example.com","password":"short"}`)

	err := h.Register(c)
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	c, rec := newEchoContext(t, http.MethodGet, "/health/ping", "")

	require.NoError(t, Ping(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PONG")
}
