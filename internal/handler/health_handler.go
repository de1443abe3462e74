package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck is the liveness probe used by the hosting platform.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
