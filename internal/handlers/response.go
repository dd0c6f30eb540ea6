package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// respondError writes the uniform JSON error envelope.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// respondValidationFailed writes a 400 carrying every field violation.
func respondValidationFailed(c *fiber.Ctx, details map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": details,
	})
}
