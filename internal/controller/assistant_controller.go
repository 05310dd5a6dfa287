package controller

import (
	"github.com/gofiber/fiber/v2"

	"outfix-be/internal/dto"
	"outfix-be/internal/pkg/serverutils"
	"outfix-be/internal/service"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ToggleOnboarding(ctx *fiber.Ctx) error
	AdvanceOnboarding(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	AnalyzePhoto(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Points(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("session", c.CreateSession)
	h.Post("onboarding/toggle", c.ToggleOnboarding)
	h.Post("onboarding/advance", c.AdvanceOnboarding)
	h.Post("chat", c.SendChat)
	h.Post("analyze", c.AnalyzePhoto)
	h.Get("history/:sessionId", c.History)
	h.Get("points/:sessionId", c.Points)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *assistantController) ToggleOnboarding(ctx *fiber.Ctx) error {
	var req dto.ToggleOnboardingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.ToggleOnboarding(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle preference", res))
}

func (c *assistantController) AdvanceOnboarding(ctx *fiber.Ctx) error {
	var req dto.AdvanceOnboardingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.AdvanceOnboarding(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance onboarding", res))
}

func (c *assistantController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *assistantController) AnalyzePhoto(ctx *fiber.Ctx) error {
	var req dto.AnalyzePhotoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.AnalyzePhoto(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze photo", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.assistantService.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *assistantController) Points(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.assistantService.GetPoints(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show points", res))
}
