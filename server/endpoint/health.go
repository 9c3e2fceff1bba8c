// Package endpoint contains standalone HTTP endpoints that are not part of
// the authenticated API surface.
package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthMessage is the plain-text body served at the root route.
const healthMessage = "Inventario API is up!"

// Health returns the unauthenticated root handler used as a liveness
// check.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, healthMessage)
	}
}
