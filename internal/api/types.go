package api

import "time"

// User represents a Skybase user account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// AuthResult is the response of the register, login and refresh endpoints.
type AuthResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// RegisterRequest is the POST /auth/register request body.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the POST /auth/login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshRequest is the POST /auth/refresh request body. The token travels
// as payload, not as an Authorization header.
type refreshRequest struct {
	Token string `json:"token"`
}

// Project represents a Skybase project.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// CreateProjectRequest is the POST /projects request body.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreatedProject is the POST /projects response. The API key appears here
// once and is never returned again.
type CreatedProject struct {
	Project Project `json:"project"`
	APIKey  string  `json:"apiKey"`
}

// regenerateKeyResponse is the regenerate-api-key response body.
type regenerateKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// TrackEventRequest is the POST /v1/events request body.
type TrackEventRequest struct {
	UserID string         `json:"userId"`
	Event  string         `json:"event"`
	Value  *float64       `json:"value,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// TrackEventResult is the POST /v1/events response.
type TrackEventResult struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}

// Event represents a recorded event as returned by GET /v1/events.
type Event struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Event     string         `json:"event"`
	Value     *float64       `json:"value,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
}
