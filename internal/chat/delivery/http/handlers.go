package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dwed-assistant/internal/chat"
	"dwed-assistant/pkg/response"
)

// SessionHeader carries the session id on both request and response.
// When the client supplies neither the header nor a body field, a new
// session id is generated and echoed back.
const SessionHeader = "X-Session-Id"

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

// Chat handles POST /api/chat.
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, chat.ErrEmptyMessage.Error())
		return
	}

	sessionID := h.resolveSessionID(c, req.SessionID)
	c.Header(SessionHeader, sessionID)

	out, err := h.uc.Chat(ctx, chat.ChatInput{SessionID: sessionID, Message: req.Message})
	if err != nil {
		h.mapError(c, err)
		return
	}

	switch out.Type {
	case chat.ResultVenues:
		response.OKEnvelope(c, response.TypeVenues, nonNil(out.Venues))
	case chat.ResultEventPlanners:
		response.OKEnvelope(c, response.TypeEventPlanners, nonNil(out.Planners))
	default:
		response.OKEnvelope(c, response.TypeText, out.Text)
	}
}

// Reset handles POST /api/chat/reset.
func (h *handler) Reset(c *gin.Context) {
	var req resetRequest
	// Body is optional; the header alone identifies the session.
	_ = c.ShouldBindJSON(&req)

	sessionID := h.resolveSessionID(c, req.SessionID)
	c.Header(SessionHeader, sessionID)

	h.uc.Reset(c.Request.Context(), sessionID)
	response.OKAck(c, "Conversation history cleared")
}

// resolveSessionID prefers the body field, then the header, then mints
// a fresh id.
func (h *handler) resolveSessionID(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.BadRequest(c, chat.ErrEmptyMessage.Error())
	case errors.Is(err, chat.ErrProviderUnavailable):
		h.l.Errorf(ctx, "chat/delivery/http.Chat: provider unavailable: %v", err)
		response.BadGateway(c, "assistant is temporarily unavailable")
	default:
		h.l.Errorf(ctx, "chat/delivery/http.Chat: %v", err)
		response.InternalError(c, err)
	}
}

// nonNil keeps empty result lists as [] rather than null on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
