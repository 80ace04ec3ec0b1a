package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors allows the configured frontend origins. An empty allow-list
// means any origin (development default).
func (m Middleware) Cors() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(m.config.CORS.AllowedOrigins))
	for _, origin := range m.config.CORS.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok || len(allowed) == 0 {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, X-Session-Id")
				c.Header("Access-Control-Expose-Headers", "X-Session-Id")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
