package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultOrigins are the local development frontends.
var DefaultOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:5173",
}

// Origins is a browser origin allow-list.
type Origins map[string]bool

// NewOrigins returns DefaultOrigins plus extra, which may hold
// comma-separated lists. Trailing slashes are ignored.
func NewOrigins(extra ...string) Origins {
	o := make(Origins, len(DefaultOrigins)+len(extra))
	for _, origin := range DefaultOrigins {
		o[origin] = true
	}
	for _, list := range extra {
		for _, origin := range strings.Split(list, ",") {
			if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
				o[origin] = true
			}
		}
	}
	return o
}

// Allows reports whether origin may make credentialed requests. An empty
// origin means a non-browser client and is always allowed.
func (o Origins) Allows(origin string) bool {
	return origin == "" || o[origin]
}

// CORS allows credentialed requests from origins. Requests without an
// Origin header pass untouched.
func CORS(origins Origins) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if !origins.Allows(origin) {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization, Accept, Origin, X-Requested-With")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "RateLimit-Limit, RateLimit-Remaining, RateLimit-Reset, Retry-After, Content-Disposition")
		h.Set("Access-Control-Max-Age", "600")

		// Preflight ends here, before auth or rate limiting.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
