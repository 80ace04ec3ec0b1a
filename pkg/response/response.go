package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given body as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// OKEnvelope sends 200 JSON with a typed result envelope.
func OKEnvelope(c *gin.Context, typ string, data any) {
	c.JSON(http.StatusOK, Envelope{Type: typ, Data: data})
}

// OKAck sends 200 JSON with an acknowledgement body.
func OKAck(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Ack{Message: message, Status: StatusOK})
}

// BadRequest sends 400 with an error body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: message})
}

// BadGateway sends 502 with an error body (upstream provider failures).
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, ErrResp{Error: message})
}

// TooManyRequests sends 429 with an error body.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: message})
}

// InternalError sends 500 with an error body.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: err.Error()})
}
