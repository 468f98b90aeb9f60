package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	history, err := c.service.Prepare(&req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	// The request context is recycled once the handler returns, so the stream
	// gets its own context bounded by the service timeout.
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		err := c.service.Stream(context.Background(), history, func(token string) error {
			if err := writeEvent(w, "", dto.ChatTokenEvent{Content: token}); err != nil {
				return err
			}
			return w.Flush()
		})

		if err != nil {
			_ = writeEvent(w, "error", dto.ChatErrorEvent{Message: err.Error()})
		} else {
			_ = writeEvent(w, "done", struct{}{})
		}
		_ = w.Flush()
	}))

	return nil
}

func writeEvent(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
