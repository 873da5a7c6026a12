package skybase

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is the environment surface for NewFromEnv.
type envConfig struct {
	BaseURL      string        `env:"SKYBASE_URL"`
	APIKey       string        `env:"SKYBASE_API_KEY"`
	SessionToken string        `env:"SKYBASE_SESSION_TOKEN"`
	MaxRetries   int           `env:"SKYBASE_MAX_RETRIES" envDefault:"3"`
	BaseDelay    time.Duration `env:"SKYBASE_RETRY_BASE_DELAY" envDefault:"1s"`
	AutoRefresh  bool          `env:"SKYBASE_AUTO_REFRESH" envDefault:"true"`
}

// NewFromEnv creates a client configured from the environment:
//
//	SKYBASE_URL               API base URL
//	SKYBASE_API_KEY           project API key
//	SKYBASE_SESSION_TOKEN     previously persisted session token
//	SKYBASE_MAX_RETRIES       retry ceiling (default 3)
//	SKYBASE_RETRY_BASE_DELAY  backoff base delay (default 1s)
//	SKYBASE_AUTO_REFRESH      transparent token refresh (default true)
//
// A .env file in the working directory is loaded first if present. Explicit
// options override environment values.
func NewFromEnv(opts ...Option) (*Client, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[envConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	envOpts := []Option{
		WithMaxRetries(cfg.MaxRetries),
		WithBaseDelay(cfg.BaseDelay),
		WithAutoRefresh(cfg.AutoRefresh),
	}
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		envOpts = append(envOpts, WithAPIKey(cfg.APIKey))
	}
	if cfg.SessionToken != "" {
		envOpts = append(envOpts, WithSessionToken(cfg.SessionToken))
	}

	return New(append(envOpts, opts...)...)
}
