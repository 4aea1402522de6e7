// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"expensetracker/config"
	"expensetracker/internal/domain/service"
)

// signingKeySize is sized for HMAC-SHA256.
const signingKeySize = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	key []byte           // Symmetric signing key, fixed for the process lifetime.
	ttl time.Duration    // Time-to-live for issued tokens.
	now func() time.Time // Clock, swappable in tests.
}

// NewJWTService is the constructor for jwtService. The signing key comes from
// configuration as base64-encoded material; when none is configured a fresh
// key is generated from crypto/rand. A generated key lives only in process
// memory, so every token issued with it is invalidated by a restart — fine for
// development, wrong for any multi-instance or restarting deployment.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	encoded := strings.TrimSpace(cfg.SecretKey.Signing)
	if encoded == "" {
		generated, err := generateSigningKey()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate signing key")
		}
		logger.Warn("No signing secret configured; generated an ephemeral key. Tokens will not survive a restart.")
		encoded = generated
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "signing secret is not valid base64")
	}
	if len(key) == 0 {
		return nil, errors.New("signing secret decodes to empty key material")
	}

	return &jwtService{
		key: key,
		ttl: cfg.TokenDuration(),
		now: time.Now,
	}, nil
}

// generateSigningKey produces base64-encoded random key material. The process
// must not serve requests without a usable key, so callers treat failure as fatal.
func generateSigningKey() (string, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Wrap(err, "crypto/rand read failed")
	}

	return base64.StdEncoding.EncodeToString(key), nil
}

// Issue creates a signed token carrying the subject (username) and the numeric
// user identity as the uid claim. Expiry is now + configured lifetime.
func (s *jwtService) Issue(subject string, userID int64) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if userID <= 0 {
		return "", errors.New("token user id must be positive")
	}

	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token and validates signature and expiry. A token without
// an expiry claim is rejected rather than treated as unbounded. All failure
// modes collapse into one wrapped error: the reason is for logs, never for the
// client response.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}
	if !token.Valid {
		return nil, errors.New("token verification failed")
	}

	return claims, nil
}

// TokenDuration returns the configured lifetime of issued tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
