package session

import (
	"time"
)

// User is the signed-in account profile as returned by the backend's login
// endpoint. IDs are backend-assigned integers.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session is the authenticated-identity state held between login and
// logout or expiry. The token is opaque to the client; ExpiresAt is only
// set when the token could be inspected (JWT exp claim) and stays zero
// otherwise.
type Session struct {
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// New creates a session for the given role from a freshly issued token and
// user profile.
func New(role Role, token string, user User) (Session, error) {
	if !role.Valid() {
		return Session{}, ErrInvalidRole
	}
	if token == "" {
		return Session{}, ErrMissingToken
	}

	return Session{
		Role:      role,
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}, nil
}

// IsExpired reports whether the session is known to be expired locally.
// Sessions without expiry knowledge never report expired; the backend's 401
// remains the authority.
func (s Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsAuthenticated reports whether the session carries a usable token.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && !s.IsExpired()
}
