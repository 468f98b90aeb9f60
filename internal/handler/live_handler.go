package handler

import (
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/serverutils"
	internalWS "micro-automation-hub/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type SessionCounter interface {
	Count() int
}

// LiveHandler exposes the read-only live feed of feedback activity.
type LiveHandler struct {
	hub      *internalWS.Hub
	sessions SessionCounter
	logger   logger.ILogger
}

func NewLiveHandler(hub *internalWS.Hub, sessions SessionCounter, log logger.ILogger) *LiveHandler {
	return &LiveHandler{
		hub:      hub,
		sessions: sessions,
		logger:   log,
	}
}

// ServeWs upgrades the request and streams live events until the peer disconnects.
func (h *LiveHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("LiveHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("LiveHandler", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
	})(c)
}

func (h *LiveHandler) Status(c *fiber.Ctx) error {
	return c.JSON(serverutils.SuccessResponse("Success get live status", fiber.Map{
		"clients":         h.hub.ClientCount(),
		"wizard_sessions": h.sessions.Count(),
	}))
}

func (h *LiveHandler) RegisterRoutes(router fiber.Router) {
	live := router.Group("/live")
	live.Get("/ws", h.ServeWs)
	live.Get("/v1/status", h.Status)
}
