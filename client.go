package skybase

import (
	"context"

	"github.com/skybase/client-go/internal/api"
)

// User represents a Skybase user account.
type User = api.User

// Project represents a Skybase project.
type Project = api.Project

// Event represents a recorded analytics event.
type Event = api.Event

// AuthResult is the outcome of Register, Login, and RefreshToken.
type AuthResult = api.AuthResult

// CreatedProject is the outcome of CreateProject. The API key appears here
// once and is never returned by the server again.
type CreatedProject = api.CreatedProject

// TrackEventResult is the outcome of TrackEvent.
type TrackEventResult = api.TrackEventResult

// Client is the Skybase client. Construct one with New and share it; it is
// safe for concurrent use, and concurrent requests that hit an expired
// session token share a single refresh exchange.
type Client struct {
	api *api.Client
}

// New creates a new Skybase client. A client may start without credentials
// and acquire a session token through Register or Login.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:          cfg.baseURL,
		APIKey:           cfg.apiKey,
		SessionToken:     cfg.sessionToken,
		HTTPClient:       cfg.httpClient,
		MaxRetries:       cfg.maxRetries,
		BaseDelay:        cfg.baseDelay,
		Jitter:           cfg.jitter,
		AttemptTimeout:   cfg.attemptTimeout,
		AutoRefreshToken: cfg.autoRefresh,
		OnTokenRefresh:   cfg.onTokenRefresh,
		Logger:           cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// SessionToken returns the current session token, or "" if none is set.
func (c *Client) SessionToken() string {
	return c.api.Credentials().SessionToken()
}

// SetSessionToken replaces the session token, for example with one the host
// application persisted earlier. The OnTokenRefresh hook fires.
func (c *Client) SetSessionToken(token string) {
	c.api.Credentials().SetSessionToken(token)
}

// APIKey returns the current API key, or "" if none is set.
func (c *Client) APIKey() string {
	return c.api.Credentials().APIKey()
}

// SetAPIKey replaces the API key. The key is treated as an opaque string;
// only the server ever parses it.
func (c *Client) SetAPIKey(key string) {
	c.api.Credentials().SetAPIKey(key)
}

// RefreshToken exchanges the current session token for a new one. If a
// refresh is already in flight, the call attaches to it and shares its
// outcome. On failure the session token is cleared.
func (c *Client) RefreshToken(ctx context.Context) (*AuthResult, error) {
	result, err := c.api.EnsureRefreshed(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Logout discards the session token. The API key, if any, is kept. There is
// no server-side call; session tokens simply expire.
func (c *Client) Logout() {
	c.api.Credentials().ClearSessionToken()
}
