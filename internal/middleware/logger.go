package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger emits one structured access line per request. Handler errors
// collected on the context escalate the line to warn level.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// Capture the raw path before handlers can rewrite the request.
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("client", c.ClientIP()),
			zap.Duration("took", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			log.Warn(c.Errors.String(), fields...)
			return
		}
		log.Info("handled request", fields...)
	}
}
