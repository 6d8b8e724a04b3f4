// Package apperror defines the closed set of error kinds used across the API
// and their HTTP status mapping. Handlers raise *Error values; a single
// boundary in the HTTP layer converts them into responses.
package apperror

import "errors"

// Kind classifies a failure for logging and HTTP status mapping.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindAuth       Kind = "AUTH_ERROR"
	KindForbidden  Kind = "FORBIDDEN"
	KindNotFound   Kind = "NOT_FOUND"
	KindDatabase   Kind = "DATABASE_ERROR"
	KindBadRequest Kind = "BAD_REQUEST"
	KindInternal   Kind = "INTERNAL_SERVER_ERROR"
	KindConflict   Kind = "CONFLICT"
	KindRateLimit  Kind = "RATE_LIMIT"
	KindUnknown    Kind = "UNKNOWN"
)

// Status returns the default HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBadRequest:
		return 400
	case KindAuth:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindConflict:
		return 409
	case KindRateLimit:
		return 429
	default:
		return 500
	}
}

// Error is a typed application error carrying an HTTP status, a kind tag and
// optional structured metadata. Constructed at the failure site, consumed at
// the response boundary.
type Error struct {
	Message  string
	Status   int
	Kind     Kind
	Metadata map[string]any
	cause    error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error without changing the client-facing
// message.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

func newError(message string, kind Kind, metadata map[string]any) *Error {
	return &Error{
		Message:  message,
		Status:   kind.Status(),
		Kind:     kind,
		Metadata: metadata,
	}
}

// Validation creates a 400 VALIDATION_ERROR.
func Validation(message string, metadata map[string]any) *Error {
	return newError(message, KindValidation, metadata)
}

// Auth creates a 401 AUTH_ERROR.
func Auth(message string) *Error {
	return newError(message, KindAuth, nil)
}

// Forbidden creates a 403 FORBIDDEN error.
func Forbidden(message string) *Error {
	return newError(message, KindForbidden, nil)
}

// NotFound creates a 404 NOT_FOUND error.
func NotFound(message string) *Error {
	return newError(message, KindNotFound, nil)
}

// Conflict creates a 409 CONFLICT error.
func Conflict(message string) *Error {
	return newError(message, KindConflict, nil)
}

// Database creates a 500 DATABASE_ERROR.
func Database(message string, metadata map[string]any) *Error {
	return newError(message, KindDatabase, metadata)
}

// BadRequest creates a 400 BAD_REQUEST error.
func BadRequest(message string) *Error {
	return newError(message, KindBadRequest, nil)
}

// Internal creates a 500 INTERNAL_SERVER_ERROR.
func Internal(message string) *Error {
	return newError(message, KindInternal, nil)
}

// From coerces any error into an *Error. Typed errors pass through; anything
// else becomes an INTERNAL_SERVER_ERROR with the original as cause.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal Server Error").WithCause(err)
}
