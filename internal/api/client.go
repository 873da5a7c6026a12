package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout is the default per-attempt timeout. An attempt that exceeds
// it is classified as a network failure and participates in the retry path.
const DefaultTimeout = 30 * time.Second

// Doer sends a single HTTP request. *http.Client satisfies it; tests supply
// fakes.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config configures the API client. All fields except BaseURL are optional.
type Config struct {
	BaseURL          string
	APIKey           string
	SessionToken     string
	HTTPClient       Doer
	MaxRetries       int
	BaseDelay        time.Duration
	Jitter           float64
	AttemptTimeout   time.Duration
	AutoRefreshToken bool
	OnTokenRefresh   func(string)
	Logger           *slog.Logger
}

// Client is the HTTP API client. It owns the credential store and the
// request-execution pipeline: credential selection, failure classification,
// exponential-backoff retry, and single-flight session-token refresh.
//
// Client is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     Doer
	creds          *Credentials
	retry          RetryConfig
	attemptTimeout time.Duration
	autoRefresh    bool
	logger         *slog.Logger
	refreshGroup   singleflight.Group
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	retry := RetryConfig{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		Jitter:     cfg.Jitter,
	}
	if retry.BaseDelay <= 0 {
		retry.BaseDelay = DefaultBaseDelay
	}
	if retry.MaxRetries < 0 {
		retry.MaxRetries = 0
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	attemptTimeout := cfg.AttemptTimeout
	if attemptTimeout == 0 {
		attemptTimeout = DefaultTimeout
	}

	return &Client{
		baseURL:        cfg.BaseURL,
		httpClient:     httpClient,
		creds:          NewCredentials(cfg.APIKey, cfg.SessionToken, cfg.OnTokenRefresh),
		retry:          retry,
		attemptTimeout: attemptTimeout,
		autoRefresh:    cfg.AutoRefreshToken,
		logger:         logger,
	}, nil
}

// Credentials returns the client's credential store.
func (c *Client) Credentials() *Credentials {
	return c.creds
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestSpec describes one logical API call and its execution policy.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// RequireAuth makes the request carry an Authorization header; without a
	// credential the request fails fast with ErrNoCredential.
	RequireAuth bool
	// Retryable allows network and server failures to be retried with
	// exponential backoff.
	Retryable bool
	// RefreshOn401 allows a 401 to trigger a single session-token
	// refresh-and-retry cycle. Never set on the auth endpoints themselves.
	RefreshOn401 bool
}

// Do executes one logical request. Physical attempts proceed as follows:
// a classified network or server failure on a retryable spec is retried up
// to MaxRetries times with exponential backoff; a 401 on a refresh-eligible
// spec triggers at most one shared token refresh followed by one immediate
// re-send, which does not consume a retry slot; everything else surfaces
// immediately. A 401 that follows a successful refresh surfaces as-is: the
// credential is known-bad and looping would never terminate.
//
// On a 2xx response the body is decoded into result when result is non-nil.
func (c *Client) Do(ctx context.Context, spec RequestSpec, result any) error {
	var payload []byte
	if spec.Body != nil {
		data, err := json.Marshal(spec.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	// One ID per logical request, constant across physical attempts, so the
	// server can correlate retries.
	requestID := uuid.NewString()

	bo := c.retry.newBackOff()
	refreshed := false
	attempt := 0

	for {
		err := c.send(ctx, spec, payload, requestID, attempt, result)
		if err == nil {
			return nil
		}

		kind, classified := Classify(err)
		if !classified {
			// ErrNoCredential, context cancellation: not attempt outcomes.
			return err
		}

		switch {
		case kind == KindAuth && spec.RefreshOn401 && c.autoRefresh && !refreshed && c.creds.HasSessionToken():
			c.logger.DebugContext(ctx, "request unauthorized, refreshing session token",
				"method", spec.Method, "path", spec.Path, "request_id", requestID)
			if _, rerr := c.EnsureRefreshed(ctx); rerr != nil {
				// Surface the original auth error, not the refresh failure.
				return err
			}
			refreshed = true
			// The refresh-triggered re-send is immediate and does not
			// consume a retry slot.
			continue

		case (kind == KindNetwork || kind == KindServer) && spec.Retryable && attempt < c.retry.MaxRetries:
			delay := bo.NextBackOff()
			c.logger.DebugContext(ctx, "request failed, retrying",
				"method", spec.Method, "path", spec.Path, "request_id", requestID,
				"attempt", attempt, "kind", kind.String(), "delay", delay, "error", err)
			if werr := waitFor(ctx, delay); werr != nil {
				return werr
			}
			attempt++
			continue
		}

		return err
	}
}

// send performs one physical attempt.
func (c *Client) send(ctx context.Context, spec RequestSpec, payload []byte, requestID string, attempt int, result any) error {
	sendCtx := ctx
	cancel := context.CancelFunc(func() {})
	if c.attemptTimeout > 0 {
		sendCtx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
	}
	defer cancel()

	u := c.baseURL + spec.Path
	if len(spec.Query) > 0 {
		u += "?" + spec.Query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(sendCtx, spec.Method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	if spec.RequireAuth {
		value, err := c.creds.AuthorizationValue()
		if err != nil {
			// Fail fast: no network call without a credential.
			return err
		}
		req.Header.Set("Authorization", "Bearer "+value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// The caller cancelled; an attempt-timeout expiry, by contrast,
			// leaves the parent context alive and classifies as network.
			return ctx.Err()
		}
		return &NetworkError{Err: err, URL: u, Attempt: attempt}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &NetworkError{Err: err, URL: u, Attempt: attempt}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, result); err != nil {
			return &ParseError{Err: err, Body: data}
		}
		return nil
	}

	return newAPIError(resp.StatusCode, data)
}
