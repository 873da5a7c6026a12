package skybase

import (
	"errors"
	"fmt"

	"github.com/skybase/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrNoCredential is returned when a call requires authentication but
	// neither an API key nor a session token is configured.
	ErrNoCredential = api.ErrNoCredential

	// ErrNoSessionToken is returned by RefreshToken when there is no session
	// token to exchange.
	ErrNoSessionToken = api.ErrNoSessionToken

	// ErrUnauthorized is returned when the credential was rejected by the
	// server and, if a refresh was eligible, the refresh did not help.
	ErrUnauthorized = api.ErrUnauthorized
)

// ErrorKind classifies a failed request.
type ErrorKind = api.ErrorKind

// Error kind constants.
const (
	// KindNetwork means the request never reached the server.
	KindNetwork = api.KindNetwork
	// KindServer means the server answered with a 5xx status.
	KindServer = api.KindServer
	// KindAuth means the server answered with 401.
	KindAuth = api.KindAuth
	// KindClient means the server answered with any other 4xx status.
	KindClient = api.KindClient
	// KindParse means a success response carried an undecodable body.
	KindParse = api.KindParse
)

// SkybaseError is implemented by all SDK errors.
type SkybaseError interface {
	error
	SkybaseError() // marker method
}

// APIError represents an HTTP error from the Skybase API. StatusCode and the
// raw response body are preserved so the host application can render a
// specific message.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("skybase: api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("skybase: api error %d", e.StatusCode)
}

// SkybaseError implements the SkybaseError interface.
func (e *APIError) SkybaseError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 401 && target == ErrUnauthorized
}

// NetworkError represents a transport-level failure: the request never
// produced a response, so there is no status code (it reads as 0).
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("skybase: network error after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SkybaseError implements the SkybaseError interface.
func (e *NetworkError) SkybaseError() {}

// ParseError represents a malformed body on an otherwise successful response.
type ParseError struct {
	Err  error
	Body []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("skybase: parse error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SkybaseError implements the SkybaseError interface.
func (e *ParseError) SkybaseError() {}

// wrapError converts internal API errors to public errors so that type
// assertions and errors.As work against the package's exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempt + 1,
		}
	}

	var parseErr *api.ParseError
	if errors.As(err, &parseErr) {
		return &ParseError{
			Err:  parseErr.Err,
			Body: parseErr.Body,
		}
	}

	return err
}
