package skybase

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/skybase/client-go/internal/api"
)

// RegisterParams describes a new user account.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// Validate checks the params before any network I/O.
func (p RegisterParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&p.Name, validation.Length(0, 200)),
	)
}

// LoginParams describes user credentials.
type LoginParams struct {
	Email    string
	Password string
}

// Validate checks the params before any network I/O.
func (p LoginParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

// Register creates a new user account and stores the returned session token
// (firing the OnTokenRefresh hook). Register is never retried automatically:
// a blind retry risks creating the account twice.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	result, err := c.api.Register(ctx, api.RegisterRequest{
		Email:    params.Email,
		Password: params.Password,
		Name:     params.Name,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Login authenticates a user and stores the returned session token (firing
// the OnTokenRefresh hook). Login is never retried automatically.
func (c *Client) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	result, err := c.api.Login(ctx, api.LoginRequest{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
