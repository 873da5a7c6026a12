// Package skybase provides a Go client SDK for Skybase, a backend-as-a-service
// for authentication, projects, and event analytics.
//
// The SDK authenticates with either a long-lived project API key or a
// short-lived user session token, and shields callers from transient network
// failures and expiring credentials: retryable failures are retried with
// exponential backoff, and an expired session token is refreshed transparently
// (with at most one refresh in flight per client) before the request is
// re-sent.
//
// Basic usage:
//
//	client, err := skybase.New(skybase.WithAPIKey(os.Getenv("SKYBASE_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.TrackEvent(ctx, skybase.TrackEventParams{
//	    UserID: "user-42",
//	    Event:  "signup",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// User-session flow:
//
//	client, _ := skybase.New(
//	    skybase.WithOnTokenRefresh(func(token string) {
//	        // Persist the new token (keychain, browser storage, prefs).
//	    }),
//	)
//
//	result, err := client.Login(ctx, skybase.LoginParams{
//	    Email:    "dev@example.com",
//	    Password: "secret",
//	})
package skybase
