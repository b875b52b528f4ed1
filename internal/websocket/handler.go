package websocket

import (
	"noteboard-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

// ServeWs runs one board view connection until it closes. The view receives
// its full state first.
func ServeWs(hub *Hub, board service.IBoardService, c *websocket.Conn, sessionID string) {
	client := NewClient(hub, board, c, sessionID)
	client.Hub.register <- client

	for _, msg := range board.Render(sessionID) {
		client.queue(msg)
	}

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	client.readPump()
}
