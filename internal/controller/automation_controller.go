package controller

import (
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAutomationController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type automationController struct {
	service service.IAutomationService
}

func NewAutomationController(service service.IAutomationService) IAutomationController {
	return &automationController{service: service}
}

func (c *automationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/automations/v1")
	h.Get("", c.GetAll)
}

func (c *automationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all automations", res))
}
