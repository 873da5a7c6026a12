package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors that can be checked with errors.Is.
var (
	// ErrNoCredential is returned when a request requires authentication but
	// neither an API key nor a session token is configured.
	ErrNoCredential = errors.New("no credential configured")

	// ErrNoSessionToken is returned when a token refresh is requested but no
	// session token is present.
	ErrNoSessionToken = errors.New("no session token to refresh")

	// ErrUnauthorized indicates the credential was rejected by the server.
	ErrUnauthorized = errors.New("invalid or expired credential")
)

// ErrorKind classifies the outcome of a single request attempt. Exactly one
// kind applies per attempt; the kind drives the retry and refresh decisions.
type ErrorKind int

const (
	// KindNetwork means the transport never reached the server, or the
	// platform surfaced the failure as status 0.
	KindNetwork ErrorKind = iota
	// KindServer means the server answered with a 5xx status.
	KindServer
	// KindAuth means the server answered with 401.
	KindAuth
	// KindClient means the server answered with any other 4xx status.
	KindClient
	// KindParse means the response was a success but its body could not be
	// decoded.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindAuth:
		return "auth"
	case KindClient:
		return "client"
	case KindParse:
		return "parse"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ClassifyStatus maps an HTTP status code to an error kind. Status 0 is
// treated as a transport failure. The checked ranges are disjoint, so the
// mapping is total over failure statuses.
func ClassifyStatus(code int) ErrorKind {
	switch {
	case code == 0:
		return KindNetwork
	case code >= 500 && code <= 599:
		return KindServer
	case code == 401:
		return KindAuth
	default:
		return KindClient
	}
}

// Classify reports the kind of a classified attempt error. It returns false
// for errors that are not attempt outcomes (context errors, ErrNoCredential).
func Classify(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return KindNetwork, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return KindParse, true
	}
	return 0, false
}

// APIError represents a non-2xx response from the Skybase API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 401 && target == ErrUnauthorized
}

// newAPIError classifies a failure response. The server reports errors as
// {"error": "..."} or {"message": "..."}; anything else is kept verbatim.
func newAPIError(statusCode int, body []byte) *APIError {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	message := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			message = errResp.Error
		} else if errResp.Message != "" {
			message = errResp.Message
		}
	}

	return &APIError{
		Kind:       ClassifyStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}
}

// NetworkError represents a transport-level failure: the request never
// produced a usable response. Its status code is 0 by definition.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed body on an otherwise successful response.
type ParseError struct {
	Err  error
	Body []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
