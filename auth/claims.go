package auth

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kbukum/inventario/model"
)

// Claims is the token payload issued on login: the subject is the
// username, the ID (jti) uniquely identifies the token, and UserID carries
// the store-assigned user identifier. Issuer, audience, issued-at, and
// expiry are stamped by the jwt service at issuance.
type Claims struct {
	UserID uint `json:"user_id"`
	gojwt.RegisteredClaims
}

// NewClaims builds the claims for a freshly authenticated user.
func NewClaims(user *model.User) *Claims {
	return &Claims{
		UserID: user.ID,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: user.Username,
			ID:      uuid.NewString(),
		},
	}
}

// SetDefaults stamps the standard time and origin claims. It is called by
// the jwt service at issuance.
func (c *Claims) SetDefaults(now time.Time, ttl time.Duration, issuer, audience string) {
	c.IssuedAt = gojwt.NewNumericDate(now)
	c.ExpiresAt = gojwt.NewNumericDate(now.Add(ttl))
	c.Issuer = issuer
	c.Audience = gojwt.ClaimStrings{audience}
}
