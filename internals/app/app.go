package app

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	middlewares "github.com/Maru1209/EulerQ-candidate-test/internals/middlewares"
	routes "github.com/Maru1209/EulerQ-candidate-test/internals/route"
	"github.com/Maru1209/EulerQ-candidate-test/internals/views"
)

// New assembles the whole Fiber app. main and the tests share this
// constructor so both run the exact same middleware chain and routes.
func New(db *gorm.DB, cfg *configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 views.NewEngine(),
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	middlewares.SetupMiddlewares(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, db, cfg)

	return app
}
