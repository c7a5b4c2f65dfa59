package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. It is the default store:
// sessions live exactly as long as the process, mirroring browser
// session-storage scope.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Get returns the stored session for the role, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, role Role) (Session, error) {
	if !role.Valid() {
		return Session{}, ErrInvalidRole
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[role.StorageKey()]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Save stores the session under its role's namespace, overwriting any
// previous session for that role.
func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	if !sess.Role.Valid() {
		return ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Role.StorageKey()] = sess
	return nil
}

// Delete removes the role's session. Idempotent.
func (s *MemoryStore) Delete(_ context.Context, role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, role.StorageKey())
	return nil
}
