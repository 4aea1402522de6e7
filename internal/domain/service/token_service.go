package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the decoded fields embedded in an issued token.
// The username travels in the registered subject claim; the numeric user
// identity travels in a private uid claim.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Principal is the verified identity derived from a token. It is built fresh
// per request and never persisted.
type Principal struct {
	UserID   int64
	Username string
}

// TokenService turns a user identity into a signed, time-bounded bearer token
// and back. Implementations hold the single process-wide signing key.
type TokenService interface {
	// Issue creates a signed token for the given subject and numeric identity.
	Issue(subject string, userID int64) (string, error)

	// Verify parses and validates a token string, returning its claims.
	// Every structural, signature or expiry problem collapses into a single
	// invalid-token error so that parser internals never reach a client.
	Verify(tokenString string) (*Claims, error)

	// TokenDuration returns the configured lifetime of issued tokens.
	TokenDuration() time.Duration
}
