package middleware

import (
	"strings"

	deliverycontext "expensetracker/internal/delivery/context"
	"expensetracker/internal/delivery/http/cookie"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// bypassPrefixes lists the routes reachable without a token. Everything else
// behind this middleware requires a verified identity.
var bypassPrefixes = []string{
	"/auth/register",
	"/auth/login",
	"/health/ping",
}

// AuthMiddleware authenticates requests with the signed session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and attaches the resulting
// principal to the request context. The token is taken from the session
// cookie first; only when no cookie is present does the Authorization header
// get a look. A present-but-blank token is treated exactly like an absent one
// and the request is rejected before any handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.isBypassed(c.Request().URL.Path) {
			return next(c)
		}

		tokenString := m.extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		principal := service.Principal{
			UserID:   claims.UserID,
			Username: claims.Subject,
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) isBypassed(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// extractToken returns the raw token, or "" when neither carrier holds one.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if ck, err := c.Cookie(cookie.TokenCookieName); err == nil {
		return strings.TrimSpace(ck.Value)
	}

	authHeader := c.Request().Header.Get("Authorization")
	if after, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return strings.TrimSpace(after)
	}

	return ""
}
