package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP resolves the originating address of a submission: the first
// X-Forwarded-For entry, then X-Real-IP, then the peer address, then "unknown".
// IPv4-mapped IPv6 addresses are reported in dotted form.
func ClientIP(c *gin.Context) string {
	return strings.TrimPrefix(clientIP(c), ipv4MappedPrefix)
}

const ipv4MappedPrefix = "::ffff:"

func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}

	if c.Request != nil && c.Request.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			return c.Request.RemoteAddr
		}
		if host != "" {
			return host
		}
	}

	return "unknown"
}
