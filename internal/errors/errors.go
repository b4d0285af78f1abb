package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error for HTTP mapping and logging.
type ErrorType string

const (
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrUpstream     ErrorType = "UPSTREAM"
	ErrUnavailable  ErrorType = "UNAVAILABLE"
	ErrInternal     ErrorType = "INTERNAL"
)

// AppError carries a user-facing message plus the underlying cause. The
// message is what HTTP callers see; the cause stays in logs.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string, cause error) *AppError {
	return New(ErrNotFound, message, cause)
}

// NewValidationError creates a new invalid input error.
func NewValidationError(message string, cause error) *AppError {
	return New(ErrInvalidInput, message, cause)
}

// NewUpstreamError creates an error for a failed dependency call whose
// message is safe to show to the caller.
func NewUpstreamError(message string, cause error) *AppError {
	return New(ErrUpstream, message, cause)
}

// NewUnavailableError creates an error for a dependency that is not
// configured or not reachable.
func NewUnavailableError(message string, cause error) *AppError {
	return New(ErrUnavailable, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *AppError {
	return New(ErrInternal, message, cause)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrNotFound
	}
	return false
}

// IsInvalidInput checks if the error is an invalid input error.
func IsInvalidInput(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrInvalidInput
	}
	return false
}

// HTTPStatus maps an error to the status code the API layer should
// respond with. Unknown errors map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrUpstream:
		return http.StatusBadGateway
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for an error. For AppErrors the
// cause is deliberately omitted unless it is itself the message.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
