package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when the token is not a parseable JWT.
var ErrMalformed = errors.New("malformed token")

// Claims are the backend-issued claims the client cares about. Zero-value
// fields mean the claim was absent.
type Claims struct {
	// Subject is the account identity (backend user ID as a string).
	Subject string
	// Role is the console role claim attached at login.
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim lies in the past. Tokens
// without an exp claim never report expired.
func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// consoleClaims mirrors the backend's JWT payload.
type consoleClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect parses the token without verifying its signature and returns its
// claims. The result is informational only and must never be used to grant
// anything.
func Inspect(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrMalformed
	}

	var cc consoleClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &cc); err != nil {
		return Claims{}, errors.Join(ErrMalformed, err)
	}

	claims := Claims{
		Subject: cc.Subject,
		Role:    cc.Role,
	}
	if cc.IssuedAt != nil {
		claims.IssuedAt = cc.IssuedAt.Time
	}
	if cc.ExpiresAt != nil {
		claims.ExpiresAt = cc.ExpiresAt.Time
	}
	return claims, nil
}
