package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"reinsure/internal/pkg/response"
	"reinsure/internal/pkg/utils"
)

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", utils.ClientIP(c),
		}
		if id := c.GetString("admin_id"); id != "" {
			attrs = append(attrs, "admin_id", id)
		}
		if rid := requestID(c); rid != "" {
			attrs = append(attrs, "request_id", rid)
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", attrs...)
		default:
			logger.Info("request", attrs...)
		}
	}
}

// ErrorLogger logs errors recorded on the context and recovers from panics
// with a generic 500. Both are reported to Sentry when it is configured.
func ErrorLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("panic: %v", recovered)
				logRequestError(logger, c, "panic", err, debug.Stack())
				hub.Recover(recovered)
				response.Abort(c, http.StatusInternalServerError, "Internal server error")
				return
			}

			for _, e := range c.Errors {
				logRequestError(logger, c, "handler", e.Err, nil)
				if c.Writer.Status() >= http.StatusInternalServerError {
					hub.CaptureException(e.Err)
				}
			}
		}()

		c.Next()
	}
}

func logRequestError(logger *slog.Logger, c *gin.Context, kind string, err error, stack []byte) {
	attrs := []any{
		"type", kind,
		"status", c.Writer.Status(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", utils.ClientIP(c),
		"request_id", requestID(c),
		"error", err,
	}
	if stack != nil {
		attrs = append(attrs, "stack", string(stack))
	}
	logger.Error("request_error", attrs...)
}

func requestID(c *gin.Context) string {
	return c.GetHeader("X-Request-ID")
}
