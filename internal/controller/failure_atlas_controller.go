package controller

import (
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFailureAtlasController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
}

type failureAtlasController struct {
	service service.IFailureAtlasService
}

func NewFailureAtlasController(service service.IFailureAtlasService) IFailureAtlasController {
	return &failureAtlasController{service: service}
}

func (c *failureAtlasController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/failure-atlas/v1")
	h.Get("", c.Overview)
}

func (c *failureAtlasController) Overview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.Context(), ctx.Query("branch"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get failure atlas", res))
}
