package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingParameter indicates a required query parameter was absent.
	// It is raised before any network I/O.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrTransport indicates the request could not be completed or its
	// response could not be read as JSON
	ErrTransport = errors.New("transport error")

	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the request parameters were rejected
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out or was cancelled
	ErrTimeout = errors.New("request timed out")

	// ErrInvalidResponse indicates a body that is not valid JSON
	// or lacks the keys a caller depends on
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError represents a non-2xx answer from the widget service
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError. Every APIError is a transport error.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != 404
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// ValidationError represents a problem with request parameters
type ValidationError struct {
	Field   string
	Message string

	missing bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is matches ErrMissingParameter for errors built by ErrMissingField
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingParameter && e.missing
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ErrMissingField reports an absent required parameter
func ErrMissingField(field string) error {
	return &ValidationError{
		Field:   field,
		Message: "parameter is required",
		missing: true,
	}
}

// ErrInvalidFormat reports a parameter that could not be parsed
func ErrInvalidFormat(field, expected string) error {
	return NewValidationError(field, fmt.Sprintf("invalid format, expected %s", expected))
}

// transportError wraps cause so that it matches ErrTransport
func transportError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, cause)
}
