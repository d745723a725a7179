package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// NetworkError means no response reached the client at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the server responded with a non-2xx status.
// Message is extracted from the response body when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// ConfigError means the request was malformed before it was ever sent.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("request config error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// APIError is the domain-level failure a fetcher hands to the application:
// either a transport failure normalized for display, or a logical failure
// signalled by the backend envelope (status=false) regardless of HTTP code.
type APIError struct {
	Name    string
	Message string
	Status  int   // 0 when no HTTP response was involved
	Err     error // original cause, kept for logging only
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// NewAPIError normalizes any transport error into an APIError suitable for
// storing in a slice and rendering to the user.
func NewAPIError(name string, err error) *APIError {
	switch cause := errors.Cause(err).(type) {
	case *APIError:
		return cause
	case *NetworkError:
		return &APIError{Name: name, Message: "could not reach the server", Err: err}
	case *HTTPError:
		return &APIError{Name: name, Message: cause.Message, Status: cause.Status, Err: err}
	case *ConfigError:
		return &APIError{Name: name, Message: "invalid request", Err: err}
	default:
		return &APIError{Name: name, Message: "something went wrong", Err: err}
	}
}

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
