package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fedashop/internal/domain"
	"fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List serves GET /api/products?category=&featured=true&sort=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	sortKey, ok := validate.Sort(c.Query("sort"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "sort"})
		return fail(c, fiber.StatusBadRequest, "invalid sort")
	}
	category := c.Query("category")
	if category != "" {
		if category, ok = validate.Category(category); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			return fail(c, fiber.StatusBadRequest, "invalid category")
		}
	}
	ps, err := h.Catalog.List(c.UserContext(), category, c.QueryBool("featured"), sortKey)
	if err != nil {
		return respondErr(c, "products.list", err)
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	ps, err := h.Catalog.Featured(c.UserContext())
	if err != nil {
		return respondErr(c, "products.featured", err)
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return fail(c, fiber.StatusNotFound, "not found")
	}
	p, err := h.Catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondErr(c, "products.get", err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.NewProduct
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed body")
	}
	p, err := h.Catalog.Insert(c.UserContext(), in)
	if err != nil {
		return respondErr(c, "products.create", err)
	}
	log.Audit(c, "product.create", map[string]any{"product_id": p.ID, "category": p.Category})
	return c.Status(fiber.StatusCreated).JSON(p)
}
