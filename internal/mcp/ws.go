package mcp

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// handleWebSocket serves one MCP session over a WebSocket connection:
// each text frame carries one JSON-RPC message, each response goes
// back as one frame. Runs until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	slog.Info("websocket client connected", "remote", conn.RemoteAddr().String())

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read failed", "err", err)
			}
			return
		}

		resp := s.Handle(r.Context(), raw)
		if resp == nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, resp); err != nil {
			slog.Warn("websocket write failed", "err", err)
			return
		}
	}
}
