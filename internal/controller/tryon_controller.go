package controller

import (
	"github.com/gofiber/fiber/v2"

	"outfix-be/internal/dto"
	"outfix-be/internal/pkg/serverutils"
	"outfix-be/internal/service"
)

type ITryOnController interface {
	RegisterRoutes(r fiber.Router)
	TryOn(ctx *fiber.Ctx) error
}

type tryOnController struct {
	tryOnService service.ITryOnService
}

func NewTryOnController(tryOnService service.ITryOnService) ITryOnController {
	return &tryOnController{
		tryOnService: tryOnService,
	}
}

func (c *tryOnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tryon/v1")
	h.Post("", c.TryOn)
}

func (c *tryOnController) TryOn(ctx *fiber.Ctx) error {
	var req dto.TryOnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tryOnService.TryOn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success virtual try-on", res))
}
