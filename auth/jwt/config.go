package jwt

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// SigningMethod defines supported JWT signing algorithms.
// Tokens are signed with a shared symmetric secret; the HMAC family is the
// only one this service issues or accepts.
type SigningMethod string

const (
	HS256 SigningMethod = "HS256"
	HS384 SigningMethod = "HS384"
	HS512 SigningMethod = "HS512"
)

// Config configures the JWT token service.
type Config struct {
	// Secret is the HMAC signing key. Required; an empty secret is a fatal
	// configuration error surfaced at construction, never per-request.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Method is the signing algorithm (default: HS256).
	Method SigningMethod `yaml:"method" mapstructure:"method"`

	// Issuer is the "iss" claim. Required; verified on every token.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// Audience is the "aud" claim. Required; verified on every token.
	Audience string `yaml:"audience" mapstructure:"audience"`

	// TokenTTL is the lifetime of issued tokens (default: 8h).
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Method == "" {
		c.Method = HS256
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 8 * time.Hour
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	switch c.Method {
	case HS256, HS384, HS512:
	default:
		return errors.New("jwt: unsupported signing method: " + string(c.Method))
	}
	if c.Secret == "" {
		return errors.New("jwt: signing secret is required")
	}
	if c.Issuer == "" {
		return errors.New("jwt: issuer is required")
	}
	if c.Audience == "" {
		return errors.New("jwt: audience is required")
	}
	return nil
}

// signingMethod returns the golang-jwt SigningMethod instance.
func (c *Config) signingMethod() gojwt.SigningMethod {
	switch c.Method {
	case HS384:
		return gojwt.SigningMethodHS384
	case HS512:
		return gojwt.SigningMethodHS512
	default:
		return gojwt.SigningMethodHS256
	}
}

// key returns the shared secret used for both signing and verification.
func (c *Config) key() []byte {
	return []byte(c.Secret)
}
