package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /api/v1/ws: upgrades the connection and hands it
// to the ConnectionManager, which owns it until close. Clients pass the
// platform token as the access_token query parameter.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Origin enforcement is deferred to the deployment proxy; the
		// token check already ran in authRequired.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
