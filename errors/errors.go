package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// InvalidCredentials creates the single error returned for any failed login.
// The message is identical whether the username is unknown or the password
// is wrong.
func InvalidCredentials() *AppError {
	return &AppError{
		Code:       ErrCodeInvalidCredentials,
		Message:    "Invalid username or password.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthenticated creates the generic error for requests without a valid
// bearer token. Bad signature, tampering, and expiry all collapse here.
func Unauthenticated() *AppError {
	return &AppError{
		Code:       ErrCodeUnauthenticated,
		Message:    "Authentication required.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code:       ErrCodeAlreadyExists,
		Message:    fmt.Sprintf("A %s with these details already exists.", resource),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"resource": resource},
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code:       ErrCodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Database creates a new AppError for a storage-layer failure.
func Database(operation string, cause error) *AppError {
	return &AppError{
		Code:       ErrCodeDatabaseError,
		Message:    "A storage error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"operation": operation},
		Cause:      cause,
	}
}

// Configuration creates a new AppError for invalid process configuration.
// Callers must treat it as fatal at startup.
func Configuration(message string) *AppError {
	return &AppError{
		Code:       ErrCodeConfiguration,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}
