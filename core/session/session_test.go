package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/consolekit/core/session"
)

func TestNew(t *testing.T) {
	t.Run("creates session with token and user", func(t *testing.T) {
		user := session.User{ID: 1, Name: "Ann", Email: "a@b.com"}

		sess, err := session.New(session.RoleAdmin, "T1", user)
		require.NoError(t, err)

		assert.Equal(t, session.RoleAdmin, sess.Role)
		assert.Equal(t, "T1", sess.Token)
		assert.Equal(t, user, sess.User)
		assert.False(t, sess.CreatedAt.IsZero())
		assert.True(t, sess.ExpiresAt.IsZero())
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := session.New(session.RoleAdmin, "", session.User{ID: 1})
		assert.ErrorIs(t, err, session.ErrMissingToken)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := session.New(session.Role("manager"), "T1", session.User{ID: 1})
		assert.ErrorIs(t, err, session.ErrInvalidRole)
	})
}

func TestSession_Expiry(t *testing.T) {
	t.Run("no expiry knowledge means not expired", func(t *testing.T) {
		sess, err := session.New(session.RoleAdmin, "T1", session.User{ID: 1})
		require.NoError(t, err)

		assert.False(t, sess.IsExpired())
		assert.True(t, sess.IsAuthenticated())
	})

	t.Run("past expiry reports expired", func(t *testing.T) {
		sess, err := session.New(session.RoleAdmin, "T1", session.User{ID: 1})
		require.NoError(t, err)
		sess.ExpiresAt = time.Now().Add(-time.Minute)

		assert.True(t, sess.IsExpired())
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("future expiry is still authenticated", func(t *testing.T) {
		sess, err := session.New(session.RoleAdmin, "T1", session.User{ID: 1})
		require.NoError(t, err)
		sess.ExpiresAt = time.Now().Add(time.Hour)

		assert.False(t, sess.IsExpired())
		assert.True(t, sess.IsAuthenticated())
	})
}

func TestRole(t *testing.T) {
	t.Run("storage keys are namespaced per role", func(t *testing.T) {
		assert.NotEqual(t, session.RoleAdmin.StorageKey(), session.RoleSuperAdmin.StorageKey())
		assert.Equal(t, "console:session:admin", session.RoleAdmin.StorageKey())
		assert.Equal(t, "console:session:super_admin", session.RoleSuperAdmin.StorageKey())
	})

	t.Run("login endpoints differ per role", func(t *testing.T) {
		assert.Equal(t, "/admin/login", session.RoleAdmin.LoginEndpoint())
		assert.Equal(t, "/superadmin/login", session.RoleSuperAdmin.LoginEndpoint())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, session.RoleAdmin.Valid())
		assert.True(t, session.RoleSuperAdmin.Valid())
		assert.False(t, session.Role("root").Valid())
		assert.False(t, session.Role("").Valid())
	})
}
