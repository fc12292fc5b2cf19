package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	avail, err := h.Inv.CheckAvailability(c.UserContext(), productID)
	if err != nil {
		return respondErr(c, "availability.check", err)
	}
	return c.JSON(avail)
}
