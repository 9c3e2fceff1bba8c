// Package middleware provides the Gin middleware stack for the inventario
// service: the bearer-token access gate, panic recovery, request IDs,
// CORS, and request logging.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/inventario/auth"
	"github.com/kbukum/inventario/auth/authctx"
	apperrors "github.com/kbukum/inventario/errors"
)

// ClaimsKey is the Gin context key under which validated claims are stored.
const ClaimsKey = "claims"

// Auth returns the access gate: a middleware that rejects any request
// without a valid bearer token before the downstream handler runs.
// A missing header, a malformed header, a bad signature, a wrong issuer or
// audience, and an expired token all produce the same 401 response.
//
// On success the validated claims are attached to both the Gin context and
// the request context (via authctx) and the chain continues.
func Auth(validator auth.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthenticated(c *gin.Context) {
	appErr := apperrors.Unauthenticated()
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
