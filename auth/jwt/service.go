// Package jwt provides a generic JWT token service using Go generics.
//
// The service is parameterized by a custom claims type T, which must
// implement jwt.Claims (typically by embedding jwt.RegisteredClaims). The
// inventario service uses auth.Claims, but the package itself does not know
// about any specific claims structure.
//
// Usage:
//
//	svc, err := jwt.NewService(cfg, func() *MyClaims { return &MyClaims{} })
//	token, err := svc.Issue(&MyClaims{UserID: 42})
//	claims, err := svc.Parse(tokenString)
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ClaimsWithDefaults is implemented by claims types that accept the
// standard time and origin claims at issuance.
type ClaimsWithDefaults interface {
	SetDefaults(now time.Time, ttl time.Duration, issuer, audience string)
}

// Service provides JWT token issuance and validation for custom claims
// type T. T must implement jwt.Claims (e.g., by embedding
// jwt.RegisteredClaims).
type Service[T gojwt.Claims] struct {
	cfg      Config
	newEmpty func() T
}

// NewService creates a new JWT service.
// The newEmpty function returns a zero-value instance of T for parsing.
// An empty signing secret is rejected here, so a misconfigured process
// fails at startup rather than on the first login.
func NewService[T gojwt.Claims](cfg *Config, newEmpty func() T) (*Service[T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	return &Service[T]{cfg: *cfg, newEmpty: newEmpty}, nil
}

// Issue creates a signed token from the given claims. If the claims type
// implements ClaimsWithDefaults, issued-at, expiry, issuer, and audience
// are stamped from the service configuration before signing.
func (s *Service[T]) Issue(claims T) (string, error) {
	if setter, ok := any(claims).(ClaimsWithDefaults); ok {
		setter.SetDefaults(time.Now(), s.cfg.TokenTTL, s.cfg.Issuer, s.cfg.Audience)
	}
	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString(s.cfg.key())
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns claims of type T.
// It verifies the signature, issuer, audience, and expiry; expiry is
// compared against the current time with no leeway. Any single failure
// yields an error; callers surface them all as one generic
// "unauthenticated" condition.
func (s *Service[T]) Parse(tokenString string) (T, error) {
	claims := s.newEmpty()
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("jwt: parse token: %w", err)
	}
	if !token.Valid {
		var zero T
		return zero, errors.New("jwt: invalid token")
	}
	parsed, ok := token.Claims.(T)
	if !ok {
		var zero T
		return zero, errors.New("jwt: unexpected claims type")
	}
	return parsed, nil
}

// ValidatorFunc returns a function that validates a token string and
// returns the parsed claims as any. This bridges the typed JWT service
// with generic middleware that doesn't know about the claims type.
//
//	gate := middleware.Auth(auth.NewValidator(svc.ValidatorFunc()))
func (s *Service[T]) ValidatorFunc() func(string) (any, error) {
	return func(token string) (any, error) {
		return s.Parse(token)
	}
}

// TTL returns the configured token lifetime.
func (s *Service[T]) TTL() time.Duration {
	return s.cfg.TokenTTL
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service[T]) keyFunc(token *gojwt.Token) (interface{}, error) {
	expected := s.cfg.signingMethod()
	if token.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return s.cfg.key(), nil
}

// parserOptions returns jwt.ParserOption based on config.
func (s *Service[T]) parserOptions() []gojwt.ParserOption {
	return []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		gojwt.WithIssuer(s.cfg.Issuer),
		gojwt.WithAudience(s.cfg.Audience),
		gojwt.WithExpirationRequired(),
	}
}
