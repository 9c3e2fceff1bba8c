package auth

// TokenValidator validates a token string and returns the parsed claims.
// This is the core authentication contract; the access gate middleware
// depends on this interface rather than a specific implementation.
//
// The returned value is stored in the request context via authctx.Set and
// retrieved with authctx.Get[T].
type TokenValidator interface {
	ValidateToken(token string) (any, error)
}

// TokenValidatorFunc adapts an ordinary function to the TokenValidator
// interface.
type TokenValidatorFunc func(token string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(token string) (any, error) {
	return f(token)
}

// NewValidator creates a TokenValidator from a validation function. This is
// the bridge from the typed jwt.Service:
//
//	validator := auth.NewValidator(jwtSvc.ValidatorFunc())
func NewValidator(fn func(string) (any, error)) TokenValidator {
	return TokenValidatorFunc(fn)
}
