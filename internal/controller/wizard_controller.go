package controller

import (
	"strconv"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"
	"micro-automation-hub/pkg/wizard"

	"github.com/gofiber/fiber/v2"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	Blueprints(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DiscardSession(ctx *fiber.Ctx) error
	SelectBlueprint(ctx *fiber.Ctx) error
	ChangeBlueprint(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Stage(ctx *fiber.Ctx) error
	Restart(ctx *fiber.Ctx) error
	UpdateRag(ctx *fiber.Ctx) error
	AddRagURL(ctx *fiber.Ctx) error
	RemoveRagURL(ctx *fiber.Ctx) error
	AddRagUploads(ctx *fiber.Ctx) error
	RemoveRagUpload(ctx *fiber.Ctx) error
	UpdateChain(ctx *fiber.Ctx) error
	AddChainStep(ctx *fiber.Ctx) error
	UpdateChainStep(ctx *fiber.Ctx) error
	RemoveChainStep(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
}

type wizardController struct {
	service service.IWizardService
	tokens  *serverutils.SessionTokens
}

func NewWizardController(service service.IWizardService, tokens *serverutils.SessionTokens) IWizardController {
	return &wizardController{
		service: service,
		tokens:  tokens,
	}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Get("/blueprints", c.Blueprints)
	h.Post("/sessions", c.CreateSession)

	s := h.Group("/session", c.tokens.Middleware())
	s.Get("", c.GetSession)
	s.Delete("", c.DiscardSession)
	s.Post("/select", c.SelectBlueprint)
	s.Post("/change-blueprint", c.ChangeBlueprint)
	s.Post("/advance", c.Advance)
	s.Post("/edit", c.Edit)
	s.Post("/stage", c.Stage)
	s.Post("/restart", c.Restart)

	s.Patch("/rag", c.UpdateRag)
	s.Post("/rag/urls", c.AddRagURL)
	s.Delete("/rag/urls", c.RemoveRagURL)
	s.Post("/rag/uploads", c.AddRagUploads)
	s.Delete("/rag/uploads/:index", c.RemoveRagUpload)

	s.Patch("/chain", c.UpdateChain)
	s.Post("/chain/steps", c.AddChainStep)
	s.Patch("/chain/steps/:id", c.UpdateChainStep)
	s.Delete("/chain/steps/:id", c.RemoveChainStep)

	s.Get("/review", c.Review)
}

func sessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(serverutils.WizardSessionLocal).(string)
	return id
}

func stateResponse(ctx *fiber.Ctx, res *dto.WizardStateResponse, err error) error {
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update wizard", res))
}

func (c *wizardController) Blueprints(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get blueprints", c.service.Blueprints()))
}

func (c *wizardController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create wizard session", res))
}

func (c *wizardController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wizard session", res))
}

func (c *wizardController) DiscardSession(ctx *fiber.Ctx) error {
	if err := c.service.Discard(ctx.Context(), sessionID(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success discard wizard session", nil))
}

func (c *wizardController) SelectBlueprint(ctx *fiber.Ctx) error {
	var req dto.SelectBlueprintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SelectBlueprint(ctx.Context(), sessionID(ctx), &req)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) ChangeBlueprint(ctx *fiber.Ctx) error {
	res, err := c.service.ChangeBlueprint(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) Advance(ctx *fiber.Ctx) error {
	res, err := c.service.AdvanceToReview(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) Edit(ctx *fiber.Ctx) error {
	res, err := c.service.EditFromReview(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) Stage(ctx *fiber.Ctx) error {
	res, err := c.service.StageDraft(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) Restart(ctx *fiber.Ctx) error {
	res, err := c.service.Restart(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) UpdateRag(ctx *fiber.Ctx) error {
	var req dto.UpdateRagDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	res, err := c.service.UpdateRag(ctx.Context(), sessionID(ctx), &req)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) AddRagURL(ctx *fiber.Ctx) error {
	var req dto.RagURLRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddRagURL(ctx.Context(), sessionID(ctx), req.URL)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) RemoveRagURL(ctx *fiber.Ctx) error {
	var req dto.RagURLRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RemoveRagURL(ctx.Context(), sessionID(ctx), req.URL)
	return stateResponse(ctx, res, err)
}

// AddRagUploads records only the name and size of each part; contents are never read.
func (c *wizardController) AddRagUploads(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return serverutils.BadRequest("Invalid multipart form")
	}

	headers := form.File["files"]
	files := make([]wizard.FileRef, 0, len(headers))
	for _, fh := range headers {
		files = append(files, wizard.FileRef{Name: fh.Filename, Size: fh.Size})
	}

	res, err := c.service.AddRagUploads(ctx.Context(), sessionID(ctx), files)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) RemoveRagUpload(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return serverutils.BadRequest("Invalid upload index")
	}

	res, err := c.service.RemoveRagUpload(ctx.Context(), sessionID(ctx), index)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) UpdateChain(ctx *fiber.Ctx) error {
	var req dto.UpdateChainDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	res, err := c.service.UpdateChain(ctx.Context(), sessionID(ctx), &req)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) AddChainStep(ctx *fiber.Ctx) error {
	res, err := c.service.AddChainStep(ctx.Context(), sessionID(ctx))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) UpdateChainStep(ctx *fiber.Ctx) error {
	var req dto.UpdateChainStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	res, err := c.service.UpdateChainStep(ctx.Context(), sessionID(ctx), ctx.Params("id"), &req)
	return stateResponse(ctx, res, err)
}

func (c *wizardController) RemoveChainStep(ctx *fiber.Ctx) error {
	res, err := c.service.RemoveChainStep(ctx.Context(), sessionID(ctx), ctx.Params("id"))
	return stateResponse(ctx, res, err)
}

func (c *wizardController) Review(ctx *fiber.Ctx) error {
	res, err := c.service.Review(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get review", res))
}
