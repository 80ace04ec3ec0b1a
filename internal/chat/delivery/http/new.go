package http

import (
	"github.com/gin-gonic/gin"

	"dwed-assistant/internal/chat"
	"dwed-assistant/pkg/log"
)

type Handler interface {
	Chat(c *gin.Context)
	Reset(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
