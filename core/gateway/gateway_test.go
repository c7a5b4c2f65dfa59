package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/consolekit/core/gateway"
	"github.com/dmitrymomot/consolekit/core/notifier"
	"github.com/dmitrymomot/consolekit/core/session"
)

type recordedNotification struct {
	message  string
	severity notifier.Severity
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedNotification
}

func (n *recordingNotifier) Notify(message string, severity notifier.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedNotification{message: message, severity: severity})
}

func (n *recordingNotifier) all() []recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedNotification(nil), n.events...)
}

type recordingRedirector struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingRedirector) Redirect(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recordingRedirector) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

type clientFixture struct {
	client     *gateway.Client
	store      *session.MemoryStore
	notifier   *recordingNotifier
	redirector *recordingRedirector
}

func newClient(t *testing.T, baseURL string, opts ...func(*gateway.Config)) clientFixture {
	t.Helper()

	cfg := gateway.Config{
		BaseURL: baseURL,
		Role:    session.RoleAdmin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := session.NewMemoryStore()
	notif := &recordingNotifier{}
	redir := &recordingRedirector{}

	client, err := gateway.New(store, cfg,
		gateway.WithNotifier(notif),
		gateway.WithRedirector(redir),
	)
	require.NoError(t, err)

	return clientFixture{client: client, store: store, notifier: notif, redirector: redir}
}

func seedSession(t *testing.T, store *session.MemoryStore, tok string) session.Session {
	t.Helper()
	sess, err := session.New(session.RoleAdmin, tok, session.User{ID: 1, Name: "Ann", Email: "a@b.com"})
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sess))
	return sess
}

func TestNew(t *testing.T) {
	t.Run("requires a store", func(t *testing.T) {
		_, err := gateway.New(nil, gateway.Config{BaseURL: "http://x"})
		assert.ErrorIs(t, err, gateway.ErrMissingStore)
	})

	t.Run("requires a base URL", func(t *testing.T) {
		_, err := gateway.New(session.NewMemoryStore(), gateway.Config{})
		assert.ErrorIs(t, err, gateway.ErrMissingBaseURL)
	})

	t.Run("rejects prefix without leading slash", func(t *testing.T) {
		_, err := gateway.New(session.NewMemoryStore(), gateway.Config{
			BaseURL:   "http://x",
			APIPrefix: "api",
		})
		assert.ErrorIs(t, err, gateway.ErrInvalidPrefix)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := gateway.New(session.NewMemoryStore(), gateway.Config{
			BaseURL: "http://x",
			Role:    session.Role("root"),
		})
		assert.ErrorIs(t, err, session.ErrInvalidRole)
	})
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores token and user on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/admin/login", r.URL.Path)

			var creds gateway.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "a@b.com", creds.Email)
			assert.Equal(t, "x", creds.Password)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "T1",
				"user":         map[string]any{"id": 1, "name": "Ann", "email": "a@b.com", "role": "admin"},
			})
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)

		sess, err := fx.client.Login(ctx, gateway.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		assert.Equal(t, "T1", sess.Token)
		assert.Equal(t, "T1", fx.client.Token(ctx))

		user, ok := fx.client.CurrentUser(ctx)
		require.True(t, ok)
		assert.Equal(t, session.User{ID: 1, Name: "Ann", Email: "a@b.com", Role: "admin"}, user)
	})

	t.Run("rejected credentials leave prior session untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "OLD")

		_, err := fx.client.Login(ctx, gateway.Credentials{Email: "a@b.com", Password: "wrong"})
		assert.ErrorIs(t, err, gateway.ErrInvalidCredentials)
		assert.ErrorContains(t, err, "Invalid credentials")

		assert.Equal(t, "OLD", fx.client.Token(ctx))

		events := fx.notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, "Invalid credentials", events[0].message)
		assert.Equal(t, notifier.SeverityError, events[0].severity)
	})

	t.Run("transport failure leaves prior session untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // connection refused from here on

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "OLD")

		_, err := fx.client.Login(ctx, gateway.Credentials{Email: "a@b.com", Password: "x"})
		assert.ErrorIs(t, err, gateway.ErrNetworkFailure)
		assert.NotErrorIs(t, err, gateway.ErrInvalidCredentials)
		assert.Equal(t, "OLD", fx.client.Token(ctx))
	})

	t.Run("malformed success body notifies and leaves prior session untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway timeout</html>"))
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "OLD")

		_, err := fx.client.Login(ctx, gateway.Credentials{Email: "a@b.com", Password: "x"})
		assert.ErrorIs(t, err, gateway.ErrNetworkFailure)
		assert.NotErrorIs(t, err, gateway.ErrInvalidCredentials)
		assert.Equal(t, "OLD", fx.client.Token(ctx))

		events := fx.notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, notifier.SeverityError, events[0].severity)
	})

	t.Run("super admin role hits its own login endpoint", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "TS",
				"user":         map[string]any{"id": 9, "name": "Sue"},
			})
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL, func(cfg *gateway.Config) {
			cfg.Role = session.RoleSuperAdmin
		})

		_, err := fx.client.Login(ctx, gateway.Credentials{Email: "s@b.com", Password: "x"})
		require.NoError(t, err)
		assert.Equal(t, "/api/superadmin/login", gotPath)
	})
}

func TestClient_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the session and redirects", func(t *testing.T) {
		fx := newClient(t, "http://backend")
		seedSession(t, fx.store, "T1")

		require.NoError(t, fx.client.Logout(ctx))

		assert.Empty(t, fx.client.Token(ctx))
		assert.Equal(t, []string{"/admin/login.html"}, fx.redirector.all())
	})

	t.Run("idempotent when already logged out", func(t *testing.T) {
		fx := newClient(t, "http://backend")

		assert.NoError(t, fx.client.Logout(ctx))
		assert.NoError(t, fx.client.Logout(ctx))
		assert.Empty(t, fx.client.Token(ctx))
	})

	t.Run("super admin redirects to site root", func(t *testing.T) {
		fx := newClient(t, "http://backend", func(cfg *gateway.Config) {
			cfg.Role = session.RoleSuperAdmin
		})

		require.NoError(t, fx.client.Logout(ctx))
		assert.Equal(t, []string{"/"}, fx.redirector.all())
	})
}

func TestClient_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("401 forces logout and still returns the response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Token has expired"})
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		resp, err := fx.client.Request(ctx, "/admin/users")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		assert.Empty(t, fx.client.Token(ctx))

		events := fx.notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, notifier.SeverityError, events[0].severity)
		assert.Contains(t, events[0].message, "expired")

		assert.Equal(t, []string{"/admin/login.html"}, fx.redirector.all())
	})

	t.Run("no token means no network call", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			calls++
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)

		_, err := fx.client.Request(ctx, "/x")
		assert.ErrorIs(t, err, gateway.ErrNotAuthenticated)
		assert.Zero(t, calls)
		assert.Len(t, fx.redirector.all(), 1)
	})

	t.Run("locally expired token means no network call", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			calls++
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		sess := seedSession(t, fx.store, "T1")
		sess.ExpiresAt = time.Now().Add(-time.Minute)
		require.NoError(t, fx.store.Save(ctx, sess))

		_, err := fx.client.Request(ctx, "/x")
		assert.ErrorIs(t, err, gateway.ErrNotAuthenticated)
		assert.Zero(t, calls)
		assert.Empty(t, fx.client.Token(ctx))
	})

	t.Run("caller headers overlay defaults but not authorization", func(t *testing.T) {
		var gotHeaders http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeaders = r.Header.Clone()
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		_, err := fx.client.Request(ctx, "/x",
			gateway.WithHeader("X-Custom", "1"),
			gateway.WithHeader("Content-Type", "text/plain"),
			gateway.WithHeader("Authorization", "Bearer FORGED"),
		)
		require.NoError(t, err)

		assert.Equal(t, "1", gotHeaders.Get("X-Custom"))
		assert.Equal(t, "text/plain", gotHeaders.Get("Content-Type"))
		assert.Equal(t, "Bearer T1", gotHeaders.Get("Authorization"))
		assert.Equal(t, []string{"Bearer T1"}, gotHeaders.Values("Authorization"))
		assert.NotEmpty(t, gotHeaders.Get("X-Request-ID"))
	})

	t.Run("path normalization is deterministic", func(t *testing.T) {
		inputs := []string{"/foo", "foo", "/api/foo", "api/foo", "/api/api/foo"}

		for _, input := range inputs {
			t.Run(input, func(t *testing.T) {
				var gotPath string
				var calls int
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					calls++
					gotPath = r.URL.Path
					w.Write([]byte(`{}`))
				}))
				defer srv.Close()

				fx := newClient(t, srv.URL)
				seedSession(t, fx.store, "T1")

				resp, err := fx.client.Request(ctx, input)
				require.NoError(t, err)
				resp.Body.Close()

				assert.Equal(t, 1, calls)
				assert.Equal(t, "/api/foo", gotPath)
			})
		}
	})

	t.Run("transport failure does not log out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		_, err := fx.client.Request(ctx, "/x")
		assert.ErrorIs(t, err, gateway.ErrNetworkFailure)

		assert.Equal(t, "T1", fx.client.Token(ctx))
		assert.Empty(t, fx.notifier.all())
		assert.Empty(t, fx.redirector.all())
	})

	t.Run("non-401 statuses pass through untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		resp, err := fx.client.Request(ctx, "/x")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "T1", fx.client.Token(ctx))
		assert.Empty(t, fx.notifier.all())
	})

	t.Run("request body and method reach the backend", func(t *testing.T) {
		var gotMethod string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		resp, err := fx.client.Request(ctx, "/admin/create-user",
			gateway.WithMethod(http.MethodPost),
			gateway.WithJSONBody(map[string]string{"name": "Bob"}),
		)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, map[string]string{"name": "Bob"}, gotBody)
	})

	t.Run("context cancellation surfaces as network failure", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		fx := newClient(t, srv.URL)
		seedSession(t, fx.store, "T1")

		cancelCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := fx.client.Request(cancelCtx, "/slow")
		assert.ErrorIs(t, err, gateway.ErrNetworkFailure)
		assert.Equal(t, "T1", fx.client.Token(ctx))
	})
}

func TestClient_EndToEnd(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "T1",
			"user":         map[string]any{"id": 1, "name": "Ann"},
		})
	})
	mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Token has expired"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fx := newClient(t, srv.URL)

	sess, err := fx.client.Login(ctx, gateway.Credentials{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "T1", sess.Token)
	assert.Equal(t, "T1", fx.client.Token(ctx))

	resp, err := fx.client.Request(ctx, "/admin/users")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Empty(t, fx.client.Token(ctx))
	assert.Equal(t, []string{"/admin/login.html"}, fx.redirector.all())
}
