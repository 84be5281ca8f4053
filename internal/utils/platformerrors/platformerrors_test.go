package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeTimeout, http.StatusRequestTimeout},
		{ErrorTypeExternal, http.StatusInternalServerError},
		{ErrorTypeConfiguration, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := ErrorTypeToHTTPStatus(tc.errorType); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.errorType, tc.want, got)
		}
	}
}

func TestHTTPStatusOverride(t *testing.T) {
	err := NewErrorWithStatus(context.Background(), LayerInfrastructure, ErrorTypeExternal,
		"upstream said no", nil, "upstream-error", http.StatusTooManyRequests)
	if err.HTTPStatus() != http.StatusTooManyRequests {
		t.Fatalf("expected explicit status 429, got %d", err.HTTPStatus())
	}

	plain := NewError(context.Background(), LayerDomain, ErrorTypeValidation, "bad input", nil, "bad-input")
	if plain.HTTPStatus() != http.StatusBadRequest {
		t.Fatalf("expected mapped status 400, got %d", plain.HTTPStatus())
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewError(context.Background(), LayerInfrastructure, ErrorTypeExternal, "request failed", cause, "req-failed")
	if err.Error() != "request failed: connection refused" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestRequestIDCapturedFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-123")
	err := NewError(ctx, LayerRoute, ErrorTypeValidation, "bad input", nil, "bad-input")
	if err.GetRequestID() != "req-123" {
		t.Fatalf("expected request id req-123, got %q", err.GetRequestID())
	}
}

func TestAsErrorPreservesPlatformError(t *testing.T) {
	orig := NewError(context.Background(), LayerDomain, ErrorTypeValidation, "bad input", nil, "bad-input")
	wrapped := fmt.Errorf("handler: %w", orig)

	got := AsError(context.Background(), LayerRoute, wrapped, "fallback")
	if got != orig {
		t.Fatalf("expected original PlatformError to be preserved")
	}

	plain := errors.New("boom")
	got = AsError(context.Background(), LayerRoute, plain, "fallback")
	if got.GetErrorType() != ErrorTypeInternal || got.Message != "fallback" {
		t.Fatalf("expected internal wrap, got %+v", got)
	}
}
