package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dwed-assistant/internal/metrics"
)

// Metrics records HTTP request count and latency as Prometheus metrics.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Use the route pattern for a low-cardinality path label.
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
