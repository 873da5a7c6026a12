package api

import (
	"errors"
	"testing"
)

func TestCredentials_AuthorizationValue_PrefersAPIKey(t *testing.T) {
	creds := NewCredentials("skb_test_key", "session-token", nil)

	value, err := creds.AuthorizationValue()
	if err != nil {
		t.Fatalf("AuthorizationValue() error = %v", err)
	}
	if value != "skb_test_key" {
		t.Errorf("AuthorizationValue() = %s, want skb_test_key", value)
	}
}

func TestCredentials_AuthorizationValue_FallsBackToSessionToken(t *testing.T) {
	creds := NewCredentials("", "session-token", nil)

	value, err := creds.AuthorizationValue()
	if err != nil {
		t.Fatalf("AuthorizationValue() error = %v", err)
	}
	if value != "session-token" {
		t.Errorf("AuthorizationValue() = %s, want session-token", value)
	}
}

func TestCredentials_AuthorizationValue_NoCredential(t *testing.T) {
	creds := NewCredentials("", "", nil)

	_, err := creds.AuthorizationValue()
	if !errors.Is(err, ErrNoCredential) {
		t.Errorf("AuthorizationValue() error = %v, want ErrNoCredential", err)
	}
}

func TestCredentials_SetSessionToken_FiresHookOnce(t *testing.T) {
	var calls []string
	creds := NewCredentials("", "", func(token string) {
		calls = append(calls, token)
	})

	creds.SetSessionToken("new-token")

	// The hook fires synchronously before SetSessionToken returns.
	if len(calls) != 1 {
		t.Fatalf("hook fired %d times, want 1", len(calls))
	}
	if calls[0] != "new-token" {
		t.Errorf("hook received %s, want new-token", calls[0])
	}
	if creds.SessionToken() != "new-token" {
		t.Errorf("SessionToken() = %s, want new-token", creds.SessionToken())
	}
}

func TestCredentials_SetSessionToken_HookCanReadStore(t *testing.T) {
	var seen string
	creds := NewCredentials("", "", nil)
	creds.onTokenRefresh = func(string) {
		// The hook runs outside the lock, so reading back must not deadlock.
		seen = creds.SessionToken()
	}

	creds.SetSessionToken("tok")

	if seen != "tok" {
		t.Errorf("hook observed %q, want tok", seen)
	}
}

func TestCredentials_ClearSessionToken_KeepsAPIKey(t *testing.T) {
	var hookCalls int
	creds := NewCredentials("skb_live_key", "session-token", func(string) {
		hookCalls++
	})

	creds.ClearSessionToken()

	if creds.SessionToken() != "" {
		t.Errorf("SessionToken() = %s, want empty", creds.SessionToken())
	}
	if creds.APIKey() != "skb_live_key" {
		t.Errorf("APIKey() = %s, want skb_live_key", creds.APIKey())
	}
	if hookCalls != 0 {
		t.Errorf("hook fired %d times on clear, want 0", hookCalls)
	}
}

func TestCredentials_SetAPIKey_NoHook(t *testing.T) {
	var hookCalls int
	creds := NewCredentials("", "", func(string) {
		hookCalls++
	})

	creds.SetAPIKey("skb_live_abc")

	if creds.APIKey() != "skb_live_abc" {
		t.Errorf("APIKey() = %s, want skb_live_abc", creds.APIKey())
	}
	if hookCalls != 0 {
		t.Errorf("hook fired %d times on SetAPIKey, want 0", hookCalls)
	}
}

func TestCredentials_HasSessionToken(t *testing.T) {
	creds := NewCredentials("key", "", nil)
	if creds.HasSessionToken() {
		t.Error("HasSessionToken() = true, want false")
	}

	creds.SetSessionToken("tok")
	if !creds.HasSessionToken() {
		t.Error("HasSessionToken() = false, want true")
	}
}
