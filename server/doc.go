// Package server provides the HTTP server for the inventario service: a
// Gin engine wrapped in an http.Server with graceful shutdown, a standard
// middleware stack (recovery, request-ID, CORS, request logging), and
// response helpers that map application errors to HTTP statuses at the
// boundary.
package server
