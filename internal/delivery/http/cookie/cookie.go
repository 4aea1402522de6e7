// Package cookie builds the session cookie that carries the access token.
package cookie

import (
	"net/http"
	"time"
)

// TokenCookieName is the cookie the authentication middleware reads first,
// before it falls back to the Authorization header.
const TokenCookieName = "jwt"

// NewTokenCookie wraps a signed token in an HttpOnly cookie scoped to the
// whole site. SameSite=Strict keeps it off cross-site requests, and the
// cookie's lifetime matches the token's so they expire together.
func NewTokenCookie(token string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearTokenCookie expires the session cookie immediately. Logout is purely
// client-side: the token itself stays valid until its expiry.
func ClearTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
