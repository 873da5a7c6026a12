package skybase

import (
	"log/slog"
	"time"

	"github.com/skybase/client-go/internal/api"
)

const (
	defaultBaseURL = "https://api.skybase.dev"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	apiKey         string
	sessionToken   string
	httpClient     api.Doer
	maxRetries     int
	baseDelay      time.Duration
	jitter         float64
	attemptTimeout time.Duration
	autoRefresh    bool
	onTokenRefresh func(string)
	logger         *slog.Logger
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:     defaultBaseURL,
		maxRetries:  api.DefaultMaxRetries,
		baseDelay:   api.DefaultBaseDelay,
		autoRefresh: true,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIKey seeds the client with a project API key.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithSessionToken seeds the client with a previously persisted session token.
func WithSessionToken(token string) Option {
	return func(c *clientConfig) {
		c.sessionToken = token
	}
}

// WithHTTPClient sets a custom HTTP transport. Anything with a
// Do(*http.Request) (*http.Response, error) method works; *http.Client does.
func WithHTTPClient(client api.Doer) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithMaxRetries sets the number of retries after the initial attempt for
// retryable failures. Default: 3, so at most 4 physical sends per request.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithBaseDelay sets the wait before the first retry. Each subsequent retry
// doubles it. Default: 1 second.
func WithBaseDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.baseDelay = delay
	}
}

// WithRetryJitter sets the randomization factor (0.0 to 1.0) applied to retry
// delays. Default: 0 (deterministic schedule).
func WithRetryJitter(factor float64) Option {
	return func(c *clientConfig) {
		c.jitter = factor
	}
}

// WithAttemptTimeout sets the timeout for a single physical send. An attempt
// that exceeds it counts as a network failure and follows the retry path.
// Default: 30 seconds.
func WithAttemptTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.attemptTimeout = timeout
	}
}

// WithAutoRefresh controls whether a 401 on an authenticated request triggers
// a transparent session-token refresh. Default: true.
func WithAutoRefresh(enabled bool) Option {
	return func(c *clientConfig) {
		c.autoRefresh = enabled
	}
}

// WithOnTokenRefresh registers a hook invoked synchronously with the new
// token whenever the session token changes (register, login, refresh). The
// client never persists credentials itself; the hook is where the host
// application does.
func WithOnTokenRefresh(fn func(token string)) Option {
	return func(c *clientConfig) {
		c.onTokenRefresh = fn
	}
}

// WithLogger sets a structured logger. Request attempts, retries, and token
// refreshes are logged at Debug level. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
