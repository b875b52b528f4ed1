package websocket

import (
	"context"
	"encoding/json"
	"time"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 256 * 1024
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub   *Hub
	Board service.IBoardService

	// The websocket connection.
	Conn *websocket.Conn

	SessionID string

	// Buffered channel of outbound messages.
	Send chan []byte

	// Signalled by the hub when the board changed somewhere.
	refresh chan struct{}
}

func NewClient(hub *Hub, board service.IBoardService, conn *websocket.Conn, sessionID string) *Client {
	return &Client{
		Hub:       hub,
		Board:     board,
		Conn:      conn,
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
		refresh:   make(chan struct{}, 1),
	}
}

// dispatch applies one view event and queues the replies.
func (c *Client) dispatch(ctx context.Context, raw []byte) {
	var event dto.BoardEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		c.queue(dto.BoardMessage{Type: dto.MessageError, Data: "malformed event"})
		return
	}

	out, err := c.Board.Handle(ctx, c.SessionID, event)
	if err != nil {
		c.queue(dto.BoardMessage{Type: dto.MessageError, Data: err.Error()})
		return
	}
	for _, msg := range out {
		c.queue(msg)
	}
}

func (c *Client) queue(msg dto.BoardMessage) {
	select {
	case c.Send <- msg.Encode():
	default:
		c.Hub.logger.Warn("Client", "Send buffer full, dropping message", map[string]interface{}{"session_id": c.SessionID, "type": msg.Type})
	}
}

// readPump pumps view events from the websocket connection into the board.
func (c *Client) readPump() {
	defer func() {
		c.Board.Close(c.SessionID)
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ctx := context.Background()
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Unexpected close", map[string]interface{}{"session_id": c.SessionID, "error": err.Error()})
			}
			break
		}
		c.dispatch(ctx, raw)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-c.refresh:
			for _, msg := range c.Board.Render(c.SessionID) {
				if msg.Type != dto.MessageBoard {
					continue
				}
				c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := c.Conn.WriteMessage(websocket.TextMessage, msg.Encode()); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
