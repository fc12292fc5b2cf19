package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fedashop/internal/cart"
	"fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// reply sends the cart. A failed slot write still answers 200: the change is
// applied in memory and will be saved with the next one. A failed slot read
// applied nothing and answers 503.
func (h *CartHandler) reply(c *fiber.Ctx, action string, v services.CartView, err error) error {
	var perr *cart.PersistenceError
	if errors.As(err, &perr) && perr.Op == "write" {
		return c.JSON(fiber.Map{
			"cart":    v,
			"saved":   false,
			"warning": "cart could not be saved; it will be retried on your next change",
		})
	}
	if err != nil {
		return respondErr(c, action, err)
	}
	return c.JSON(fiber.Map{"cart": v, "saved": v.Saved})
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	v, err := h.Cart.View(c.UserContext(), ensureSID(c))
	return h.reply(c, "cart.view", v, err)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed body")
	}
	productID, ok := validate.ID(body.ProductID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	v, err := h.Cart.Add(c.UserContext(), sid, productID)
	return h.reply(c, "cart.add", v, err)
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity == nil {
		log.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return fail(c, fiber.StatusBadRequest, "quantity is required")
	}
	v, err := h.Cart.SetQuantity(c.UserContext(), sid, productID, *body.Quantity)
	return h.reply(c, "cart.set_quantity", v, err)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	v, err := h.Cart.Remove(c.UserContext(), sid, productID)
	return h.reply(c, "cart.remove", v, err)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	v, err := h.Cart.Clear(c.UserContext(), ensureSID(c))
	return h.reply(c, "cart.clear", v, err)
}
