package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/consolekit/core/logger"
	"github.com/dmitrymomot/consolekit/core/notifier"
	"github.com/dmitrymomot/consolekit/core/session"
	"github.com/dmitrymomot/consolekit/pkg/token"
)

// Client is the session gateway: it manages the authentication lifecycle
// for one console role and issues every authenticated backend call.
// Safe for concurrent use.
type Client struct {
	cfg        Config
	store      session.Store
	httpClient *http.Client
	log        *slog.Logger
	notifier   notifier.Notifier
	redirector Redirector
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the backend's successful login payload.
type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

// errorResponse is the backend's error payload shape.
type errorResponse struct {
	Error string `json:"error"`
}

// New creates a gateway client for the configured role. The store is where
// the role's session lives between calls; it is read on every operation, so
// an externally shared store (see integration/session/redis) keeps multiple
// clients in sync.
func New(store session.Store, cfg Config, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, ErrMissingStore
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:        cfg,
		store:      store,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        slog.Default(),
		notifier:   notifier.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.redirector == nil {
		c.redirector = logRedirector{log: c.log}
	}
	return c, nil
}

// Role returns the console role this client signs into.
func (c *Client) Role() session.Role {
	return c.cfg.Role
}

// Login authenticates against the role's login endpoint. On success the
// returned session replaces any previously stored one. On failure the
// stored session is left untouched and the error distinguishes rejected
// credentials from transport problems.
func (c *Client) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return session.Session{}, fmt.Errorf("encode credentials: %w", err)
	}

	endpoint := c.cfg.BaseURL + c.normalizePath(c.cfg.Role.LoginEndpoint())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return session.Session{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.notifier.Notify("Network error. Please try again.", notifier.SeverityError)
		c.log.Error("login transport failure",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Error(err),
		)
		return session.Session{}, errors.Join(ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := decodeErrorMessage(resp)
		if msg == "" {
			msg = "Login failed"
		}
		c.notifier.Notify(msg, notifier.SeverityError)
		c.log.Warn("login rejected",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Status(resp.StatusCode),
		)
		return session.Session{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.notifier.Notify("Network error. Please try again.", notifier.SeverityError)
		c.log.Error("login response malformed",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Error(err),
		)
		return session.Session{}, errors.Join(ErrNetworkFailure, err)
	}

	sess, err := session.New(c.cfg.Role, body.AccessToken, body.User)
	if err != nil {
		return session.Session{}, err
	}
	// Expiry is informational; an opaque token just means the backend's 401
	// stays the only expiry signal.
	if claims, err := token.Inspect(body.AccessToken); err == nil {
		sess.ExpiresAt = claims.ExpiresAt
	}

	if err := c.store.Save(ctx, sess); err != nil {
		return session.Session{}, errors.Join(session.ErrSaveSession, err)
	}

	c.log.Info("login succeeded",
		logger.Component("gateway"),
		logger.Role(c.cfg.Role.String()),
		logger.UserID(sess.User.ID),
	)
	return sess, nil
}

// Logout clears the stored session and redirects to the login page.
// Idempotent: logging out with no session is not an error.
func (c *Client) Logout(ctx context.Context) error {
	err := c.store.Delete(ctx, c.cfg.Role)
	c.redirector.Redirect(c.cfg.LoginPath)

	if err != nil {
		c.log.Error("logout failed to clear session",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Error(err),
		)
		return errors.Join(session.ErrDeleteSession, err)
	}

	c.log.Info("logged out",
		logger.Component("gateway"),
		logger.Role(c.cfg.Role.String()),
	)
	return nil
}

// Token returns the currently stored access token, or the empty string when
// no session exists.
func (c *Client) Token(ctx context.Context) string {
	sess, err := c.store.Get(ctx, c.cfg.Role)
	if err != nil {
		return ""
	}
	return sess.Token
}

// CurrentUser returns the signed-in user's profile, if any.
func (c *Client) CurrentUser(ctx context.Context) (session.User, bool) {
	sess, err := c.store.Get(ctx, c.cfg.Role)
	if err != nil {
		return session.User{}, false
	}
	return sess.User, true
}

// Request issues an authenticated call against the backend. See the package
// documentation for the full contract; in short: path is normalized against
// the API prefix, caller headers overlay the defaults except Authorization,
// a 401 tears the session down (the response is still returned), and a
// missing token fails with ErrNotAuthenticated before any network activity.
func (c *Client) Request(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	options := applyRequestOptions(opts)
	if options.bodyErr != nil {
		return nil, fmt.Errorf("encode request body: %w", options.bodyErr)
	}

	sess, err := c.store.Get(ctx, c.cfg.Role)
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.forceLogout(ctx, "Please sign in again")
		return nil, ErrNotAuthenticated
	case err != nil:
		return nil, fmt.Errorf("resolve session: %w", err)
	case sess.IsExpired():
		// Known-expired token: same teardown as a 401, minus the round trip.
		c.forceLogout(ctx, "Session expired — please sign in again")
		return nil, ErrNotAuthenticated
	}

	normalized := c.normalizePath(path)
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, options.method, c.cfg.BaseURL+normalized, options.body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	for key, values := range options.headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	// Caller headers never displace the token-derived Authorization header.
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("request transport failure",
			logger.Component("gateway"),
			logger.Method(options.method),
			logger.Path(normalized),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return nil, errors.Join(ErrNetworkFailure, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("session expired",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Path(normalized),
			logger.RequestID(requestID),
		)
		c.forceLogout(ctx, "Session expired — please sign in again")
		return resp, nil
	}

	c.log.Debug("request completed",
		logger.Component("gateway"),
		logger.Method(options.method),
		logger.Path(normalized),
		logger.Status(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Duration(time.Since(start)),
	)
	return resp, nil
}

// forceLogout is the gateway-initiated teardown: notify once, clear the
// session, send the user to the login page.
func (c *Client) forceLogout(ctx context.Context, message string) {
	c.notifier.Notify(message, notifier.SeverityError)
	if err := c.store.Delete(ctx, c.cfg.Role); err != nil {
		c.log.Error("forced logout failed to clear session",
			logger.Component("gateway"),
			logger.Role(c.cfg.Role.String()),
			logger.Error(err),
		)
	}
	c.redirector.Redirect(c.cfg.LoginPath)
}

// normalizePath resolves a caller path against the configured API prefix:
// add a missing leading slash, strip any existing prefix occurrences, then
// prepend the prefix exactly once. Deterministic for every input.
func (c *Client) normalizePath(path string) string {
	prefix := c.cfg.APIPrefix

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if prefix == "" {
		return path
	}

	for path == prefix || strings.HasPrefix(path, prefix+"/") {
		path = strings.TrimPrefix(path, prefix)
		if path == "" {
			path = "/"
		}
	}
	return prefix + path
}

// decodeErrorMessage extracts the backend's {"error": "..."} message, if
// the body carries one.
func decodeErrorMessage(resp *http.Response) string {
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
