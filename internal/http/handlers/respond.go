package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "fedashop/internal/log"
	"fedashop/internal/services"
	"fedashop/internal/store"
	"fedashop/internal/validate"
)

const msgRetry = "Something went wrong. Please try again."

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// respondErr maps service errors onto status codes. Anything unrecognised is
// logged and answered with a generic retry message.
func respondErr(c *fiber.Ctx, action string, err error) error {
	var verr *validate.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "not found")
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"action": action, "fields": verr.Fields})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "invalid input",
			"fields": verr.Fields,
		})
	case errors.Is(err, services.ErrEmptyCart):
		return fail(c, fiber.StatusBadRequest, "cart is empty")
	}
	applog.Error(c, action, err, nil)
	return fail(c, fiber.StatusServiceUnavailable, msgRetry)
}

// ErrorHandler is the fiber last resort: it logs and never echoes internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return fail(c, fe.Code, fe.Message)
	}
	applog.Error(c, "server.error", err, nil)
	return fail(c, fiber.StatusInternalServerError, msgRetry)
}

// ensureSID returns the session id cookie, issuing one on first contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals("sid", sid)
	return sid
}
