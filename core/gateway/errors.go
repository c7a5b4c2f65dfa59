package gateway

import "errors"

var (
	// ErrInvalidCredentials is returned when the backend rejects a login.
	// The stored session, if any, is left untouched.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNetworkFailure is returned for transport-level failures. The
	// session is left untouched; the caller may retry manually.
	ErrNetworkFailure = errors.New("network failure")
	// ErrSessionExpired signals that the backend returned 401 on an
	// authenticated call and the session has been torn down.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotAuthenticated is returned when a request is attempted with no
	// stored token; the call fails before any network activity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMissingStore is returned when constructing a client without a
	// session store.
	ErrMissingStore = errors.New("session store is required")
	// ErrMissingBaseURL is returned when constructing a client without a
	// backend base URL.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrInvalidPrefix is returned when the API prefix does not start with
	// a slash.
	ErrInvalidPrefix = errors.New("API prefix must start with a slash")
)
