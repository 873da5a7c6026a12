package skybase

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/skybase/client-go/internal/api"
)

// TrackEventParams describes one analytics event.
type TrackEventParams struct {
	// UserID identifies the end user the event belongs to.
	UserID string
	// Event is the event name, e.g. "signup" or "purchase".
	Event string
	// Value is an optional numeric value attached to the event.
	Value *float64
	// Meta carries arbitrary JSON-serializable metadata.
	Meta map[string]any
}

// Validate checks the params before any network I/O.
func (p TrackEventParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.Event, validation.Required, validation.Length(1, 200)),
	)
}

// TrackEvent records a single event against the current project.
func (c *Client) TrackEvent(ctx context.Context, params TrackEventParams) (*TrackEventResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	result, err := c.api.TrackEvent(ctx, api.TrackEventRequest{
		UserID: params.UserID,
		Event:  params.Event,
		Value:  params.Value,
		Meta:   params.Meta,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Events returns recorded events for the current project. Pass a non-empty
// userID to filter by user.
func (c *Client) Events(ctx context.Context, userID string) ([]Event, error) {
	events, err := c.api.Events(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return events, nil
}
