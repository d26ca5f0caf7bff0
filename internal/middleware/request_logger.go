package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssapio/inferencegate-web/internal/shared/logger"
)

// RequestLoggerMiddleware logs one structured line per completed request
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"request_id", RequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
