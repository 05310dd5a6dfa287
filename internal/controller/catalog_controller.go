package controller

import (
	"github.com/gofiber/fiber/v2"

	"outfix-be/internal/pkg/serverutils"
	"outfix-be/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Testimonials(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("boxes", c.List)
	h.Get("boxes/:id", c.Show)
	h.Get("categories", c.Categories)
	h.Get("testimonials", c.Testimonials)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")
	sortOption := ctx.Query("sort", "")

	res, err := c.catalogService.ListBoxes(ctx.Context(), category, sortOption)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list boxes", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.catalogService.ShowBox(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show box", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Categories(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *catalogController) Testimonials(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Testimonials(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list testimonials", res))
}
