package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/inventario/logger"
)

// RequestLogger returns a Gin middleware that logs every request with
// method, path, status code, and duration. The root health route is
// silently skipped.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration_ms": latency.Milliseconds(),
			"client":      c.ClientIP(),
		}
		if id := c.GetString(RequestIDKey); id != "" {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			logger.Error("request failed", fields)
		case status >= 400:
			logger.Warn("request rejected", fields)
		default:
			logger.Info("request completed", fields)
		}
	}
}
