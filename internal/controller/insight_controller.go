package controller

import (
	"net/url"

	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	Teams(ctx *fiber.Ctx) error
	TeamMetrics(ctx *fiber.Ctx) error
}

type insightController struct {
	service service.IInsightService
}

func NewInsightController(service service.IInsightService) IInsightController {
	return &insightController{service: service}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insights/v1")
	h.Get("", c.Overview)
	h.Get("/teams", c.Teams)
	h.Get("/teams/:team/metrics", c.TeamMetrics)
}

func (c *insightController) Overview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get insights", res))
}

func (c *insightController) Teams(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get teams", c.service.Teams()))
}

func (c *insightController) TeamMetrics(ctx *fiber.Ctx) error {
	// Team names contain spaces, so the segment arrives escaped.
	team, err := url.PathUnescape(ctx.Params("team"))
	if err != nil {
		return serverutils.BadRequest("Invalid team name")
	}

	res, err := c.service.TeamMetrics(team)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get team metrics", res))
}
