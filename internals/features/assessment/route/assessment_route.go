package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	assessmentController "github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/controller"
)

// AssessmentRoutes is the candidate-facing surface. The route strings
// are a compatibility contract; do not rename them.
func AssessmentRoutes(router fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := assessmentController.NewAttemptController(db, cfg)

	router.Get("/test", ctrl.Landing)
	router.Post("/set-candidate", ctrl.SetCandidate)
	router.Get("/change-candidate", ctrl.ChangeCandidate)
	router.Get("/part/:id", ctrl.ShowPart)
	router.Post("/submit/:id", ctrl.SubmitPart)
	router.Get("/finalize", ctrl.ShowFinalize)
	router.Post("/finalize", ctrl.Finalize)
}

// AdminRoutes is the key-protected read surface.
func AdminRoutes(router fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := assessmentController.NewAdminController(db, cfg)

	admin := router.Group("/admin")
	admin.Get("/submissions", ctrl.ListSubmissions)
}
