package skybase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.api.BaseURL() != defaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", client.api.BaseURL(), defaultBaseURL)
	}
}

func TestNew_SeedsCredentials(t *testing.T) {
	client, err := New(
		WithAPIKey("skb_test_key"),
		WithSessionToken("tok"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.APIKey() != "skb_test_key" {
		t.Errorf("APIKey() = %s, want skb_test_key", client.APIKey())
	}
	if client.SessionToken() != "tok" {
		t.Errorf("SessionToken() = %s, want tok", client.SessionToken())
	}
}

func TestClient_Logout_KeepsAPIKey(t *testing.T) {
	client, _ := New(WithAPIKey("skb_live_key"), WithSessionToken("tok"))

	client.Logout()

	if client.SessionToken() != "" {
		t.Errorf("SessionToken() = %s, want empty", client.SessionToken())
	}
	if client.APIKey() != "skb_live_key" {
		t.Errorf("APIKey() = %s, want skb_live_key", client.APIKey())
	}
}

func TestClient_SetSessionToken_FiresHook(t *testing.T) {
	var tokens []string
	client, _ := New(WithOnTokenRefresh(func(tok string) {
		tokens = append(tokens, tok)
	}))

	client.SetSessionToken("restored")

	if len(tokens) != 1 || tokens[0] != "restored" {
		t.Errorf("hook tokens = %v, want [restored]", tokens)
	}
}

// End-to-end through the public surface: an expired session token is
// refreshed transparently and the event call succeeds on the re-send.
func TestClient_TrackEvent_TransparentRefresh(t *testing.T) {
	var refreshCalls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(map[string]any{
			"user":        map[string]string{"id": "u1"},
			"accessToken": "fresh",
		})
	})
	mux.HandleFunc("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "eventId": "e1"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	var persisted string
	client, _ := New(
		WithBaseURL(server.URL),
		WithSessionToken("stale"),
		WithBaseDelay(time.Millisecond),
		WithOnTokenRefresh(func(tok string) { persisted = tok }),
	)

	result, err := client.TrackEvent(context.Background(), TrackEventParams{
		UserID: "u1",
		Event:  "signup",
	})
	if err != nil {
		t.Fatalf("TrackEvent() error = %v", err)
	}
	if !result.Success {
		t.Error("result.Success = false, want true")
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("refresh calls = %d, want 1", got)
	}
	if persisted != "fresh" {
		t.Errorf("persisted token = %s, want fresh", persisted)
	}
}

func TestClient_TrackEvent_AutoRefreshDisabled(t *testing.T) {
	var refreshCalls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "unauthorized"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, _ := New(
		WithBaseURL(server.URL),
		WithSessionToken("stale"),
		WithAutoRefresh(false),
		WithBaseDelay(time.Millisecond),
	)

	_, err := client.TrackEvent(context.Background(), TrackEventParams{UserID: "u1", Event: "signup"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 0 {
		t.Errorf("refresh calls = %d, want 0", got)
	}
}

func TestClient_Events_NoCredentialFailsFast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request to server")
	}))
	defer server.Close()

	client, _ := New(WithBaseURL(server.URL))

	_, err := client.Events(context.Background(), "")
	if !errors.Is(err, ErrNoCredential) {
		t.Errorf("error = %v, want ErrNoCredential", err)
	}
}

func TestSetDefault(t *testing.T) {
	if Default() != nil {
		t.Error("Default() should be nil before SetDefault")
	}

	client, _ := New(WithAPIKey("k"))
	SetDefault(client)
	defer SetDefault(nil)

	if Default() != client {
		t.Error("Default() did not return the installed client")
	}
}
