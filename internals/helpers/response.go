package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Error renders a user-facing failure as a plain message. No stack
// traces, no internal identifiers.
func Error(c *fiber.Ctx, code int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

// JsonList is the machine-readable list shape (admin view with
// ?format=json).
func JsonList(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonError mirrors JsonList for failures on the JSON surface.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
