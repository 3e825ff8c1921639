package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the context key the request id is stored under.
const RequestIDKey = "requestId"

// RequestLogger logs one line per request with a generated request id,
// method, path, status and duration.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		var event *zerolog.Event
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		} else {
			event = logger.Info()
		}
		event.
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}
