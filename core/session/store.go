package session

import "context"

// Store defines the persistence interface for per-role sessions.
// Implementations must handle concurrent access safely.
type Store interface {
	// Get returns the stored session for the role, or ErrNotFound.
	Get(ctx context.Context, role Role) (Session, error)
	// Save stores the session under its role, overwriting any previous one.
	Save(ctx context.Context, sess Session) error
	// Delete removes the role's session. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context, role Role) error
}
