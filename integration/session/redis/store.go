package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/consolekit/core/session"
)

// defaultTTL bounds sessions whose tokens carry no expiry claim.
const defaultTTL = 24 * time.Hour

// Config holds Redis connection settings with environment variable mapping.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect creates a Redis client from the configured URL and verifies
// connectivity with a ping before returning it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}

	client := redis.NewClient(opts)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	return client, nil
}

// Store is a session.Store backed by Redis.
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ session.Store = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDefaultTTL overrides the TTL applied to sessions without a known
// expiry.
func WithDefaultTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewStore creates a Redis-backed session store.
func NewStore(client redis.UniversalClient, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored session for the role, or session.ErrNotFound.
func (s *Store) Get(ctx context.Context, role session.Role) (session.Session, error) {
	if !role.Valid() {
		return session.Session{}, session.ErrInvalidRole
	}

	data, err := s.client.Get(ctx, role.StorageKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, err
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, errors.Join(ErrCorruptSession, err)
	}
	return sess, nil
}

// Save stores the session under its role's key, overwriting any previous
// session. The Redis TTL tracks the token expiry when known.
func (s *Store) Save(ctx context.Context, sess session.Session) error {
	if !sess.Role.Valid() {
		return session.ErrInvalidRole
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(session.ErrSaveSession, err)
	}

	ttl := s.ttl
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			// Already expired; storing it would only feed the gateway a
			// doomed token.
			return s.Delete(ctx, sess.Role)
		}
	}

	if err := s.client.Set(ctx, sess.Role.StorageKey(), data, ttl).Err(); err != nil {
		return errors.Join(session.ErrSaveSession, err)
	}
	return nil
}

// Delete removes the role's session. Idempotent.
func (s *Store) Delete(ctx context.Context, role session.Role) error {
	if !role.Valid() {
		return session.ErrInvalidRole
	}

	if err := s.client.Del(ctx, role.StorageKey()).Err(); err != nil {
		return errors.Join(session.ErrDeleteSession, err)
	}
	return nil
}
