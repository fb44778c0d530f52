package middleware

import (
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per request and records HTTP metrics.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		endpoint := routeOf(c)
		metrics.RecordHTTPRequest(c.Request.Method, endpoint, status, duration)

		log.LogAttrs(c.Request.Context(), levelFor(status), "http request",
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("duration", duration),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}

func levelFor(status int) logger.Level {
	switch {
	case status >= 500:
		return logger.ErrorLevel
	case status >= 400:
		return logger.WarnLevel
	default:
		return logger.InfoLevel
	}
}
