package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"reinsure/internal/pkg/metrics"
	"reinsure/internal/pkg/response"
	"reinsure/internal/ratelimit"
)

// RateLimit enforces limiter per client IP and sets the standard
// RateLimit-* headers. A failing store lets the request through.
// Forwarding headers count only when the peer is a trusted proxy.
func RateLimit(limiter *ratelimit.Limiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		d, err := limiter.Check(c.Request.Context(), key)
		if err != nil {
			slog.Error("rate limit store failed", "policy", limiter.Policy.Name, "error", err)
			c.Next()
			return
		}

		resetIn := int64(math.Ceil(time.Until(d.ResetAt).Seconds()))
		if resetIn < 0 {
			resetIn = 0
		}

		h := c.Writer.Header()
		h.Set("RateLimit-Limit", strconv.FormatInt(d.Limit, 10))
		h.Set("RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
		h.Set("RateLimit-Reset", strconv.FormatInt(resetIn, 10))

		if !d.Allowed {
			h.Set("Retry-After", strconv.FormatInt(resetIn, 10))
			m.Limited(limiter.Policy.Name)
			response.Abort(c, http.StatusTooManyRequests, limiter.Policy.Message)
			return
		}

		c.Next()
	}
}
