package feed

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated admin requests to feed connections.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler accepts browser connections only from origins allowed by
// allowOrigin.
func NewHandler(hub *Hub, allowOrigin func(origin string) bool) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return allowOrigin(r.Header.Get("Origin"))
			},
		},
	}
}

// Serve handles GET /api/admin/feed
// @Summary Live intake feed
// @Description Websocket stream of lead.created, lead.status_changed and quote.created events
// @Tags Admin
// @Security BearerAuth
// @Param token query string false "Admin token for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} response.Response
// @Router /admin/feed [get]
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("feed upgrade failed", "error", err)
		return
	}
	h.hub.Serve(conn, c.GetString("admin_id"))
}
