package session

import "errors"

var (
	// ErrNotFound is returned when no session is stored for the requested role.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidRole is returned when a role outside the known set is used.
	ErrInvalidRole = errors.New("invalid role")
	// ErrMissingToken is returned when creating a session without an access token.
	ErrMissingToken = errors.New("access token is required")
	// ErrSaveSession is returned when saving a session to the store fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrDeleteSession is returned when deleting a session from the store fails.
	ErrDeleteSession = errors.New("failed to delete session")
)
