package api

import (
	"context"
	"errors"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		wantStr string
	}{
		{
			name: "with message",
			err: &APIError{
				StatusCode: 404,
				Endpoint:   "/widgets/api/GetLines.php",
				Message:    "Resource not found",
			},
			wantStr: "API error 404 (/widgets/api/GetLines.php): Resource not found",
		},
		{
			name: "without message",
			err: &APIError{
				StatusCode: 500,
				Status:     "Internal Server Error",
				Endpoint:   "/widgets/api/GetStops.php",
			},
			wantStr: "API error 500: Internal Server Error (endpoint: /widgets/api/GetStops.php)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name      string
		err       *APIError
		target    error
		wantMatch bool
	}{
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"500 matches ErrServerError", &APIError{StatusCode: 500}, ErrServerError, true},
		{"502 matches ErrServerError", &APIError{StatusCode: 502}, ErrServerError, true},
		{"400 matches ErrInvalidRequest", &APIError{StatusCode: 400}, ErrInvalidRequest, true},
		{"403 matches ErrInvalidRequest", &APIError{StatusCode: 403}, ErrInvalidRequest, true},
		{"404 does not match ErrServerError", &APIError{StatusCode: 404}, ErrServerError, false},
		{"404 does not match ErrInvalidRequest", &APIError{StatusCode: 404}, ErrInvalidRequest, false},
		{"any status matches ErrTransport", &APIError{StatusCode: 503}, ErrTransport, true},
		{"never matches ErrMissingParameter", &APIError{StatusCode: 400}, ErrMissingParameter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("Is() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(404, "Not Found", "/widgets/api/GetModes.php")

	if err.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", err.StatusCode)
	}
	if err.Status != "Not Found" {
		t.Errorf("Status = %q, want %q", err.Status, "Not Found")
	}
	if err.Endpoint != "/widgets/api/GetModes.php" {
		t.Errorf("Endpoint = %q", err.Endpoint)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("codStop", "must not be blank")

	expectedStr := "validation error: codStop - must not be blank"
	if err.Error() != expectedStr {
		t.Errorf("Error() = %q, want %q", err.Error(), expectedStr)
	}
	if errors.Is(err, ErrMissingParameter) {
		t.Error("plain validation error should not match ErrMissingParameter")
	}
}

func TestErrMissingField(t *testing.T) {
	err := ErrMissingField("codLine")

	ve := &ValidationError{}
	if !errors.As(err, &ve) {
		t.Fatal("Expected *ValidationError")
	}
	if ve.Field != "codLine" {
		t.Errorf("Field = %q, want %q", ve.Field, "codLine")
	}
	if !errors.Is(err, ErrMissingParameter) {
		t.Error("expected match with ErrMissingParameter")
	}
	if errors.Is(err, ErrTransport) {
		t.Error("missing parameter is not a transport error")
	}
}

func TestErrInvalidFormat(t *testing.T) {
	err := ErrInvalidFormat("location", "LAT:LON")

	ve := &ValidationError{}
	if !errors.As(err, &ve) {
		t.Fatal("Expected *ValidationError")
	}
	if ve.Field != "location" {
		t.Errorf("Field = %q, want %q", ve.Field, "location")
	}
}

func TestTransportError(t *testing.T) {
	err := transportError("GET GetModes.php", context.DeadlineExceeded)
	if !errors.Is(err, ErrTransport) {
		t.Error("expected ErrTransport")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected cause to be preserved")
	}
}
