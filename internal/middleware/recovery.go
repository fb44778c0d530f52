package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Jairobuifranco/A2-Group17/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a JSON 500 carrying the request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			route := routeOf(c)
			metrics.RecordPanic(route)

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", GetRequestID(c)),
				logger.String("route", route),
				logger.String("panic", fmt.Sprint(rec)),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": GetRequestID(c),
			})
		}()

		c.Next()
	}
}

func routeOf(c *ginext.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
