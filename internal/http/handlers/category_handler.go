package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories(c.UserContext())
	if err != nil {
		return respondErr(c, "categories.list", err)
	}
	return c.JSON(cats)
}

// Products lists one category. Unknown slugs give an empty list.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	slug, ok := validate.Category(c.Params("category"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return fail(c, fiber.StatusBadRequest, "invalid category")
	}
	ps, err := h.Catalog.ByCategory(c.UserContext(), slug)
	if err != nil {
		return respondErr(c, "categories.products", err)
	}
	return c.JSON(ps)
}
