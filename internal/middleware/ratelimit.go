package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"dwed-assistant/pkg/response"
)

const rateLimiterCacheSize = 4096

// RateLimit throttles per client IP with a token bucket. Limiter state
// for idle clients ages out of the cache on its own.
func (m Middleware) RateLimit() gin.HandlerFunc {
	cfg := m.config.RateLimit
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](rateLimiterCacheSize, nil, 10*time.Minute)

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(cfg.PerMin)/60.0), cfg.Burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled ip=%s", key)
			response.TooManyRequests(c, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
