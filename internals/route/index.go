package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	assessmentRoutes "github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	// ===================== CANDIDATE =====================
	log.Println("[INFO] Setting up AssessmentRoutes...")
	assessmentRoutes.AssessmentRoutes(app, db, cfg)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up AdminRoutes...")
	assessmentRoutes.AdminRoutes(app, db, cfg)

	// legacy landing path from the first draft of the app
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/test", fiber.StatusSeeOther)
	})
}
