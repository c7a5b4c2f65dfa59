// Package token inspects access tokens issued by the console backend.
//
// The backend signs JWTs; verifying them is its job, not the client's. The
// client has no signing key and the backend re-validates every request
// anyway. What the client can do is read the unverified claims to learn the
// token's expiry and role, and skip network round trips that are guaranteed
// to come back 401.
//
//	claims, err := token.Inspect(sess.Token)
//	if err == nil && claims.Expired() {
//		// force logout locally, no request needed
//	}
//
// Opaque (non-JWT) tokens fail with ErrMalformed; callers treat that as
// "no expiry knowledge", not as an invalid session.
package token
