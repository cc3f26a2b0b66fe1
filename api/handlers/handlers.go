package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// clientID resolves the caller identity used for rate limiting. Proxy
// headers win over the socket address so quotas follow the real client
// behind a load balancer; with no usable header every caller shares the
// "unknown" bucket.
func clientID(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if id := strings.TrimSpace(first); id != "" {
			return id
		}
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
