package handlers

import (
	"net/http"

	"scopex/services/notify"
	"scopex/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Session auth already ran; the admin panel origin is not restricted
	// beyond the global CORS policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler upgrades GET /api/admin/leads/stream to a websocket that
// receives every new lead as it is submitted.
type StreamHandler struct {
	Hub *notify.Hub
}

func NewStreamHandler(hub *notify.Hub) *StreamHandler {
	return &StreamHandler{Hub: hub}
}

func (h *StreamHandler) LeadStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	h.Hub.Register(conn)
}
