package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dwed-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "DWed Assistant API With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "dwed-assistant"
)

// banner greets on the root path so a browser hit shows the API is up.
func (srv *HTTPServer) banner(c *gin.Context) {
	response.OK(c, gin.H{
		"message": "Welcome to DWed, your AI wedding planning assistant!",
		"service": ServiceName,
		"version": HealthVersion,
	})
}

// healthCheck reports overall health including the document store.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := srv.db.PingContext(c.Request.Context()); err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.healthCheck: db ping: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": ServiceName,
			"version": HealthVersion,
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports readiness — returns ready if server is up.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck reports liveness.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
