package handler

import (
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"
	internalWS "noteboard-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type BoardHandler struct {
	board     service.IBoardService
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewBoardHandler(board service.IBoardService, hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *BoardHandler {
	return &BoardHandler{
		board:     board,
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs upgrades a board view connection. The view names its session with
// the session query parameter so a reconnect resumes its draft.
func (h *BoardHandler) ServeWs(c *fiber.Ctx) error {
	if h.jwtSecret != "" {
		tokenStr := serverutils.BearerToken(c)
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token (Query 'token' or Header 'Authorization')"))
		}
		if _, err := serverutils.ParseToken(tokenStr, h.jwtSecret); err != nil {
			h.logger.Warn("BoardHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err.Error()})
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionID := h.board.Open(c.Query("session")).ID
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("BoardHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(h.hub, h.board, conn, sessionID)
		h.logger.Info("BoardHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}

func (h *BoardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/board/v1/ws", h.ServeWs)
}
