package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fedashop/internal/domain"
	applog "fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

// Checkout places an order for the session cart.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var details domain.CustomerDetails
	if err := c.BodyParser(&details); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed body")
	}

	o, err := h.Order.Checkout(c.UserContext(), sid, details)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"error": err.Error()})
		return respondErr(c, "order.place", err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"total":    o.TotalAmount.String(),
		"payment":  o.PaymentMethod,
	})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// Create accepts a complete order submission, items and total included.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in domain.NewOrder
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed body")
	}
	o, err := h.Order.Create(c.UserContext(), in)
	if err != nil {
		return respondErr(c, "order.create", err)
	}
	applog.Audit(c, "order.create", map[string]any{"order_id": o.ID, "total": o.TotalAmount.String()})
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "order not found")
	}
	o, err := h.Order.Get(c.UserContext(), oid)
	if err != nil {
		return respondErr(c, "order.view", err)
	}
	return c.JSON(o)
}
