package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports liveness and which store backend is active.
func HealthCheck(storeBackend string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"store":  storeBackend,
		})
	}
}
