package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "expensetracker/internal/delivery/context"
	"expensetracker/internal/delivery/http/cookie"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/service"
	mockSvc "expensetracker/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, target string, mutate func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func validClaims(username string, userID int64) *service.Claims {
	return &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: username,
		},
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("cookie-token").Return(validClaims("alice", 42), nil)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: "cookie-token"})
	})

	var seen service.Principal
	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true
		principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
		require.True(t, ok)
		seen = principal

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, int64(42), seen.UserID)
	assert.Equal(t, "alice", seen.Username)
}

func TestAuthMiddleware_BearerHeaderFallback(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("header-token").Return(validClaims("alice", 42), nil)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer header-token")
	})

	err := m.Authenticate(func(c echo.Context) error {
		return nil
	})(c)
	require.NoError(t, err)
}

// The cookie always wins when both carriers are present, even when the
// header token would verify.
func TestAuthMiddleware_CookieTakesPrecedenceOverHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("cookie-token").Return(validClaims("alice", 42), nil)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
	})

	err := m.Authenticate(func(c echo.Context) error {
		return nil
	})(c)
	require.NoError(t, err)
}

// A blank cookie must behave exactly like a missing one: the header is NOT
// consulted and the request is rejected.
func TestAuthMiddleware_BlankCookieRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: "   "})
		req.Header.Set("Authorization", "Bearer header-token")
	})

	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, handlerCalled)
	tokenSvc.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", nil)

	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_InvalidTokenRejectedBeforeHandler(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("garbage").Return(nil, errors.New("token verification failed"))
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: "garbage"})
	})

	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_BypassRoutes(t *testing.T) {
	for _, path := range []string{"/auth/register", "/auth/login", "/health/ping"} {
		t.Run(path, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			m := NewAuthMiddleware(tokenSvc)

			c, _ := newAuthTestContext(t, path, nil)

			handlerCalled := false
			err := m.Authenticate(func(c echo.Context) error {
				handlerCalled = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.True(t, handlerCalled)
			tokenSvc.AssertNotCalled(t, "Verify")
		})
	}
}

func TestAuthMiddleware_NonBypassedAuthRoute(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/auth/me", nil)

	err := m.Authenticate(func(c echo.Context) error {
		return nil
	})(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "/expenses", func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	err := m.Authenticate(func(c echo.Context) error {
		return nil
	})(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
