// Package auth implements the authentication core of the inventario
// service: credential registration, credential verification, and signed
// token issuance.
//
// The Service orchestrates three collaborators: a store.UserStore for
// credential records, a password.Hasher for one-way digests, and a
// jwt.Service for token issuance. Request gating lives in
// server/middleware, which consumes the TokenValidator contract defined
// here.
package auth
