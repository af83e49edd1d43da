package controller

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/service"
	helper "github.com/Maru1209/EulerQ-candidate-test/internals/helpers"
)

type AdminController struct {
	Service *service.AttemptService
	Config  *configs.Config
}

func NewAdminController(db *gorm.DB, cfg *configs.Config) *AdminController {
	return &AdminController{
		Service: service.NewAttemptService(db),
		Config:  cfg,
	}
}

// GET /admin/submissions?key=...
// An empty configured key rejects everything rather than opening the
// endpoint up.
func (ctrl *AdminController) ListSubmissions(c *fiber.Ctx) error {
	key := c.Query("key")
	if ctrl.Config.AdminKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(ctrl.Config.AdminKey)) != 1 {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rows, err := ctrl.Service.ListLatest(service.AdminListLimit)
	if err != nil {
		log.Println("[ERROR] failed to list submissions:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}

	if c.Query("format") == "json" {
		return helper.JsonList(c, "latest submissions", rows)
	}
	return c.Render("admin_submissions", fiber.Map{
		"Submissions": rows,
		"Count":       len(rows),
	})
}
