package controller

import (
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
}

type roadmapController struct {
	service service.IRoadmapService
}

func NewRoadmapController(service service.IRoadmapService) IRoadmapController {
	return &roadmapController{service: service}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmap/v1")
	h.Get("", c.Overview)
}

func (c *roadmapController) Overview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get roadmap", res))
}
