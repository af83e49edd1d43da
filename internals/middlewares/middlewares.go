package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	loggerMiddleware "github.com/Maru1209/EulerQ-candidate-test/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
}

// RequestIDMiddleware tags every request so log lines can be
// correlated.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
