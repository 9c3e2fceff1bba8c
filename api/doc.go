// Package api wires the HTTP surface: route registration, request/response
// DTOs, and the Gin handlers that translate between HTTP and the auth and
// inventory services.
package api
