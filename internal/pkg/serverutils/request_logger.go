package serverutils

import (
	"time"

	"micro-automation-hub/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = StatusOf(err)
		}

		details := map[string]interface{}{
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote":      ctx.IP(),
		}

		switch {
		case status >= 500:
			log.Error("HTTP", "request", details)
		case status >= 400:
			log.Warn("HTTP", "request", details)
		default:
			log.Info("HTTP", "request", details)
		}
		return err
	}
}
