package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"dwed-assistant/pkg/response"
)

// Recovery converts panics into a generic 500 error body instead of
// dropping the connection.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", r)
				response.InternalError(c, fmt.Errorf("internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
