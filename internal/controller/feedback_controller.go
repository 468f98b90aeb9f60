package controller

import (
	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
}

type feedbackController struct {
	service service.IFeedbackService
}

func NewFeedbackController(service service.IFeedbackService) IFeedbackController {
	return &feedbackController{service: service}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")
	h.Get("", c.GetAll)
	h.Post("/submit", c.Submit)
	h.Post("/vote", c.Vote)
}

func (c *feedbackController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all feedback", res))
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success submit feedback", res))
}

func (c *feedbackController) Vote(ctx *fiber.Ctx) error {
	var req dto.VoteFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Vote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success vote feedback", res))
}
