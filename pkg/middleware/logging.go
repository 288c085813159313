package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorrelationIDHeader carries the request's correlation id in both
// directions.
const CorrelationIDHeader = "Correlation-Id"

const loggerKey = "logger"

// Logging attaches a request-scoped logger with a correlation id to the gin
// context and logs each request when it finishes.
func Logging(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Reuse the caller's id, otherwise generate one.
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Request.Header.Set(CorrelationIDHeader, correlationID)
		c.Header(CorrelationIDHeader, correlationID)

		log := base.With(
			zap.String("correlation_id", correlationID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		)
		c.Set(loggerKey, log)

		c.Next()

		log.Info("Request finished",
			zap.Int("status_code", c.Writer.Status()),
			zap.Float64("duration_ms", float64(time.Since(start))/1e6))
	}
}

// GetLogger returns the request logger set by Logging, or fallback when the
// middleware did not run.
func GetLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return fallback
}
