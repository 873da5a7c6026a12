package skybase

import "sync"

// Optional sugar: a single process-wide client for hosts that do not want to
// thread a *Client through their own code. Constructing and passing a Client
// explicitly remains the primary entry point.

var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// SetDefault installs c as the package-level default client.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultClient = c
}

// Default returns the package-level default client, or nil if SetDefault has
// not been called.
func Default() *Client {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultClient
}
