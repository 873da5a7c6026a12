package api

import (
	"context"
	"net/http"
)

// refreshKey is the singleflight key: there is one logical refresh per
// credential store, and each client owns exactly one store.
const refreshKey = "refresh"

// EnsureRefreshed exchanges the current session token for a new one. If a
// refresh for this client is already in flight, the call attaches to it and
// shares its outcome instead of issuing a second exchange. On success the
// credential store is updated (and the persistence hook fires) exactly once;
// on failure the session token is cleared and every waiter receives the same
// terminal error.
//
// The exchange itself is never retried by the backoff policy and never
// triggers a nested refresh.
func (c *Client) EnsureRefreshed(ctx context.Context) (*AuthResult, error) {
	ch := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		// Detach from the initiating caller: a cancelled request must not
		// poison the exchange for the other waiters.
		return c.refreshOnce(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*AuthResult), nil
	}
}

// refreshOnce performs the remote exchange. Only ever called through the
// singleflight group.
func (c *Client) refreshOnce(ctx context.Context) (*AuthResult, error) {
	token := c.creds.SessionToken()
	if token == "" {
		return nil, ErrNoSessionToken
	}

	var out AuthResult
	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Body:   refreshRequest{Token: token},
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		c.logger.DebugContext(ctx, "session token refresh failed", "error", err)
		c.creds.ClearSessionToken()
		return nil, err
	}

	c.creds.SetSessionToken(out.AccessToken)
	c.logger.DebugContext(ctx, "session token refreshed")
	return &out, nil
}
