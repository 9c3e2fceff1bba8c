package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authentication errors
const (
	// ErrCodeInvalidCredentials indicates a failed login. It deliberately
	// covers both "unknown username" and "wrong password" so callers cannot
	// enumerate registered usernames.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeUnauthenticated indicates a missing, malformed, tampered, or
	// expired bearer token.
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeDatabaseError indicates a storage-layer error.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	// ErrCodeConfiguration indicates invalid or missing process
	// configuration. This is fatal at startup, never per-request.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
)
