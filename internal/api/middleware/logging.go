package middleware

import (
	"time"

	"contactrelay/internal/logging"
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger creates a middleware that logs completed requests through
// the application logger. When disabled it is a no-op.
func RequestLogger(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logging.GetLogger().LogHTTPRequest(method, path, clientIP, statusCode, latency.String())
	}
}
