package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return fail(c, fiber.StatusBadRequest, "search query is required")
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return fail(c, fiber.StatusBadRequest, "search query is too long")
	}
	sortKey, ok := validate.Sort(c.Query("sort"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid sort")
	}

	products, err := h.Catalog.Search(c.UserContext(), q)
	if err != nil {
		return respondErr(c, "search.error", err)
	}
	services.SortProducts(products, sortKey)
	return c.JSON(products)
}
