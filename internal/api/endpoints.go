package api

import (
	"context"
	"net/http"
	"net/url"
)

// Each endpoint declares its execution policy statically. Register, login
// and refresh are the credential-acquisition step: they are never retried
// (a blind retry risks duplicate account creation) and never trigger a
// nested refresh. Everything else is retryable and refresh-eligible.

// Register creates a new user account and stores the returned session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var out AuthResult
	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   req,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	c.creds.SetSessionToken(out.AccessToken)
	return &out, nil
}

// Login authenticates a user and stores the returned session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	var out AuthResult
	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   req,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	c.creds.SetSessionToken(out.AccessToken)
	return &out, nil
}

// CreateProject creates a project and stores the returned API key.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*CreatedProject, error) {
	var out CreatedProject
	spec := RequestSpec{
		Method:       http.MethodPost,
		Path:         "/projects",
		Body:         req,
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	c.creds.SetAPIKey(out.APIKey)
	return &out, nil
}

// ListProjects returns all projects visible to the current credential.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	spec := RequestSpec{
		Method:       http.MethodGet,
		Path:         "/projects",
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject returns a single project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var out Project
	spec := RequestSpec{
		Method:       http.MethodGet,
		Path:         "/projects/" + url.PathEscape(id),
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegenerateAPIKey replaces the project's API key and stores the new one.
func (c *Client) RegenerateAPIKey(ctx context.Context, projectID string) (string, error) {
	var out regenerateKeyResponse
	spec := RequestSpec{
		Method:       http.MethodPost,
		Path:         "/projects/" + url.PathEscape(projectID) + "/regenerate-api-key",
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return "", err
	}
	c.creds.SetAPIKey(out.APIKey)
	return out.APIKey, nil
}

// TrackEvent records a single event.
func (c *Client) TrackEvent(ctx context.Context, req TrackEventRequest) (*TrackEventResult, error) {
	var out TrackEventResult
	spec := RequestSpec{
		Method:       http.MethodPost,
		Path:         "/v1/events",
		Body:         req,
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events returns recorded events, optionally filtered by user ID.
func (c *Client) Events(ctx context.Context, userID string) ([]Event, error) {
	var query url.Values
	if userID != "" {
		query = url.Values{"userId": {userID}}
	}

	var out []Event
	spec := RequestSpec{
		Method:       http.MethodGet,
		Path:         "/v1/events",
		Query:        query,
		RequireAuth:  true,
		Retryable:    true,
		RefreshOn401: true,
	}
	if err := c.Do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}
