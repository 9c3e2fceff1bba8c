// Package errors provides unified error handling for the inventario service.
// It implements structured error types with machine-readable codes and HTTP
// status mapping, so every request-level failure is recovered at the HTTP
// boundary and rendered as a consistent JSON envelope.
package errors
