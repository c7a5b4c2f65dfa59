package gateway

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/consolekit/core/notifier"
	"github.com/dmitrymomot/consolekit/core/session"
)

const (
	// defaultAPIPrefix matches the backend's blueprint mount point.
	defaultAPIPrefix = "/api"
	// defaultTimeout bounds calls whose context carries no deadline.
	defaultTimeout = 30 * time.Second
)

// Config holds the gateway client configuration. Fields carry env tags so
// the struct can be populated with core/config.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://console.example.com".
	BaseURL string `env:"CONSOLE_BASE_URL,required"`
	// APIPrefix is prepended exactly once to every request path.
	APIPrefix string `env:"CONSOLE_API_PREFIX" envDefault:"/api"`
	// Role selects which console this client signs into.
	Role session.Role `env:"CONSOLE_ROLE" envDefault:"admin"`
	// LoginPath is where the redirector sends the user after logout.
	// Defaults per role when empty.
	LoginPath string `env:"CONSOLE_LOGIN_PATH"`
}

// Redirector is the navigation seam toward the UI layer: after any logout,
// forced or not, the gateway asks it to move the user to the login page.
type Redirector interface {
	Redirect(path string)
}

// RedirectorFunc adapts a function to the Redirector interface.
type RedirectorFunc func(path string)

// Redirect implements Redirector.
func (f RedirectorFunc) Redirect(path string) { f(path) }

// logRedirector is the default: headless clients have nowhere to navigate,
// so the intent is logged.
type logRedirector struct {
	log *slog.Logger
}

func (r logRedirector) Redirect(path string) {
	r.log.Info("redirect to login", slog.String("path", path))
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, e.g. for transport-level
// timeouts, proxies, or TLS configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithNotifier sets the user-facing notification sink.
func WithNotifier(n notifier.Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithRedirector sets the UI navigation seam invoked after logout.
func WithRedirector(r Redirector) Option {
	return func(c *Client) {
		if r != nil {
			c.redirector = r
		}
	}
}

// normalize validates the config and fills defaults in place.
func (cfg *Config) normalize() error {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if cfg.Role == "" {
		cfg.Role = session.RoleAdmin
	}
	if !cfg.Role.Valid() {
		return session.ErrInvalidRole
	}

	if cfg.APIPrefix == "" {
		cfg.APIPrefix = defaultAPIPrefix
	}
	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		return ErrInvalidPrefix
	}
	cfg.APIPrefix = strings.TrimRight(cfg.APIPrefix, "/")

	if cfg.LoginPath == "" {
		cfg.LoginPath = defaultLoginPath(cfg.Role)
	}
	return nil
}

// defaultLoginPath mirrors the console's page layout: the super-admin login
// lives at the site root, the admin console under /admin.
func defaultLoginPath(role session.Role) string {
	if role == session.RoleSuperAdmin {
		return "/"
	}
	return "/admin/login.html"
}
