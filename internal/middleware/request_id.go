package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-Id"

const contextLogger = "logger"

// RequestLogger assigns each request an id (honoring one supplied by the
// caller), echoes it back, and writes one access-log line per request with
// a request-scoped logger available via Logger(c).
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)

		reqLog := log.With().Str("request_id", id).Logger()
		c.Set(contextLogger, reqLog)

		start := time.Now()
		c.Next()

		reqLog.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// Logger returns the request-scoped logger, or a disabled one outside a
// request.
func Logger(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(contextLogger); ok {
		if l, ok := v.(zerolog.Logger); ok {
			return l
		}
	}
	return zerolog.Nop()
}
