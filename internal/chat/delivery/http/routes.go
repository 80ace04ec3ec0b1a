package http

import "github.com/gin-gonic/gin"

// MapChatRoutes registers the conversational endpoints.
func MapChatRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/chat", h.Chat)
	r.POST("/chat/reset", h.Reset)
}
