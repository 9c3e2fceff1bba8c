// Package testutil provides helpers for wiring a fully assembled in-memory
// API in tests.
package testutil
