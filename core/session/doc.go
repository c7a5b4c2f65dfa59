// Package session holds the client-side authenticated session for the
// management console: the access token issued by the backend together with
// the signed-in user's profile, scoped per role.
//
// Two roles exist (admin and super admin) and each owns an independent
// session slot, so a process may hold both an admin and a super-admin
// session at the same time without the two colliding in storage.
//
// # Storage
//
// The Store interface abstracts where sessions live between calls. The
// in-memory store covers the common single-process case and matches the
// "cleared at session end" semantics of browser session storage: nothing
// survives the process. For clients that share one console session across
// processes, integration/session/redis provides a Redis-backed store.
//
// Basic usage:
//
//	store := session.NewMemoryStore()
//
//	sess, err := session.New(session.RoleAdmin, token, user)
//	if err != nil {
//		return err
//	}
//	if err := store.Save(ctx, sess); err != nil {
//		return err
//	}
//
//	sess, err = store.Get(ctx, session.RoleAdmin)
//	switch {
//	case errors.Is(err, session.ErrNotFound):
//		// logged out
//	case err != nil:
//		return err
//	}
//
// A new login for the same role overwrites the previous session; Delete is
// idempotent and safe to call when no session exists.
package session
