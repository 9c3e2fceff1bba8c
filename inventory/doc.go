// Package inventory implements CRUD over inventory assets. It has no
// authentication logic of its own; every route it serves sits behind the
// bearer-token access gate.
package inventory
