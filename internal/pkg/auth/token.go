// Package auth issues and verifies the bearer tokens that protect the
// coordinator API. Tokens are HS256 JWTs carrying the operator name as
// subject; there is a single administrative role, so no further claims are
// needed.
package auth

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for missing, malformed, tampered,
// or expired tokens. The HTTP adapter maps it to 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies bearer tokens for operator sessions.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime. The secret must be non-empty and the lifetime positive.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("auth secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token lifetime")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the given operator name.
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errs.NewValueIsRequiredError("subject")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning the operator name it was
// issued for. Any parse or validation failure yields ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
