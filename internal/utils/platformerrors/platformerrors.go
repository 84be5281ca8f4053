package platformerrors

import (
	"context"
	"errors"
	"net/http"
)

// Layer identifies which architectural layer produced an error.
type Layer string

const (
	LayerRoute          Layer = "route"
	LayerDomain         Layer = "domain"
	LayerInfrastructure Layer = "infrastructure"
)

// ErrorType classifies an error for HTTP status mapping.
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeExternal      ErrorType = "external"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeInternal      ErrorType = "internal"
)

// PlatformError is the typed error carried across layers. It keeps a
// stable machine-readable code (a uuid-style slug), the request id from
// the incoming context, and optionally an explicit HTTP status that
// overrides the type-based mapping (used to propagate upstream
// statuses verbatim).
type PlatformError struct {
	Layer      Layer
	Type       ErrorType
	Message    string
	Cause      error
	Code       string
	RequestID  string
	StatusCode int
}

func (e *PlatformError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *PlatformError) Unwrap() error { return e.Cause }

// GetErrorType returns the error classification.
func (e *PlatformError) GetErrorType() ErrorType { return e.Type }

// GetUUID returns the stable error code slug.
func (e *PlatformError) GetUUID() string { return e.Code }

// GetRequestID returns the request id captured when the error was created.
func (e *PlatformError) GetRequestID() string { return e.RequestID }

// RequestIDKey is the context key under which middleware stores the
// request id.
type RequestIDKey struct{}

// NewError constructs a PlatformError bound to the current request context.
func NewError(ctx context.Context, layer Layer, errorType ErrorType, message string, cause error, code string) *PlatformError {
	return &PlatformError{
		Layer:     layer,
		Type:      errorType,
		Message:   message,
		Cause:     cause,
		Code:      code,
		RequestID: requestIDFromContext(ctx),
	}
}

// NewErrorWithStatus constructs a PlatformError carrying an explicit
// HTTP status, bypassing the type-based mapping.
func NewErrorWithStatus(ctx context.Context, layer Layer, errorType ErrorType, message string, cause error, code string, status int) *PlatformError {
	err := NewError(ctx, layer, errorType, message, cause, code)
	err.StatusCode = status
	return err
}

// AsError wraps err into a PlatformError when it is not one already,
// preserving an existing PlatformError untouched.
func AsError(ctx context.Context, layer Layer, err error, message string) *PlatformError {
	var perr *PlatformError
	if errors.As(err, &perr) {
		return perr
	}
	return NewError(ctx, layer, ErrorTypeInternal, message, err, "wrapped-error")
}

// ErrorTypeToHTTPStatus maps an error classification to its default
// HTTP status code.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus resolves the status for an error, preferring an explicit
// override over the type mapping.
func (e *PlatformError) HTTPStatus() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return ErrorTypeToHTTPStatus(e.Type)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RequestIDKey{}).(string); ok {
		return id
	}
	return ""
}
