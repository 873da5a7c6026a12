package api

import "sync"

// Credentials holds the API key and session token used to authorize requests.
// The API key is long-lived and project-scoped; the session token is
// short-lived and tied to a user. When both are present the API key wins,
// because it does not expire the way a session token does.
//
// Credentials is safe for concurrent use.
type Credentials struct {
	mu             sync.RWMutex
	apiKey         string
	sessionToken   string
	onTokenRefresh func(string)
}

// NewCredentials creates a credential store seeded with the given values.
// Either value may be empty. onTokenRefresh, if non-nil, is invoked with the
// new token every time the session token is set, so the host application can
// persist it; the store itself never touches disk.
func NewCredentials(apiKey, sessionToken string, onTokenRefresh func(string)) *Credentials {
	return &Credentials{
		apiKey:         apiKey,
		sessionToken:   sessionToken,
		onTokenRefresh: onTokenRefresh,
	}
}

// AuthorizationValue returns the bearer value to place in the Authorization
// header. It returns ErrNoCredential when neither credential is set.
func (c *Credentials) AuthorizationValue() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	if c.sessionToken != "" {
		return c.sessionToken, nil
	}
	return "", ErrNoCredential
}

// SetSessionToken stores a new session token and fires the persistence hook
// exactly once, synchronously, before returning. The hook runs outside the
// store's lock so it may call back into the store.
func (c *Credentials) SetSessionToken(token string) {
	c.mu.Lock()
	c.sessionToken = token
	hook := c.onTokenRefresh
	c.mu.Unlock()

	if hook != nil {
		hook(token)
	}
}

// ClearSessionToken removes the session token. The API key, if present, is
// untouched, and the persistence hook does not fire.
func (c *Credentials) ClearSessionToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionToken = ""
}

// SetAPIKey stores a new API key. API keys are returned once by the server
// and persisting them is the caller's responsibility, so there is no hook.
func (c *Credentials) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// APIKey returns the current API key, or "" if none is set.
func (c *Credentials) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// SessionToken returns the current session token, or "" if none is set.
func (c *Credentials) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionToken
}

// HasSessionToken reports whether a session token is present.
func (c *Credentials) HasSessionToken() bool {
	return c.SessionToken() != ""
}
