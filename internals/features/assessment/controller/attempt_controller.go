package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/dto"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/service"
	helper "github.com/Maru1209/EulerQ-candidate-test/internals/helpers"
)

type AttemptController struct {
	Service  *service.AttemptService
	Config   *configs.Config
	validate *validator.Validate
}

func NewAttemptController(db *gorm.DB, cfg *configs.Config) *AttemptController {
	return &AttemptController{
		Service:  service.NewAttemptService(db),
		Config:   cfg,
		validate: validator.New(),
	}
}

// GET /test
func (ctrl *AttemptController) Landing(c *fiber.Ctx) error {
	candidate := helper.GetCandidateName(c)
	if candidate == "" {
		return c.Render("index", fiber.Map{})
	}

	prog, err := ctrl.Service.Progress(candidate)
	if err != nil {
		log.Println("[ERROR] failed to load progress:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}
	return c.Render("index", fiber.Map{
		"CandidateName": candidate,
		"Started":       true,
		"Progress":      prog,
	})
}

// POST /set-candidate
func (ctrl *AttemptController) SetCandidate(c *fiber.Ctx) error {
	var req dto.SetCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid form submission")
	}
	req.CandidateName = strings.TrimSpace(req.CandidateName)
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "candidate name is required")
	}

	helper.SetCandidateCookie(c, req.CandidateName, ctrl.Config.CookieMaxAge)
	return c.Redirect("/test", fiber.StatusSeeOther)
}

// GET /change-candidate
func (ctrl *AttemptController) ChangeCandidate(c *fiber.Ctx) error {
	helper.ClearCandidateCookie(c)
	return c.Redirect("/test", fiber.StatusSeeOther)
}

// GET /part/:id
func (ctrl *AttemptController) ShowPart(c *fiber.Ctx) error {
	candidate := helper.GetCandidateName(c)
	if candidate == "" {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}
	part, ok := service.ParseParam(c.Params("id"))
	if !ok {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}

	finalized, err := ctrl.Service.IsFinalized(candidate)
	if err != nil {
		log.Println("[ERROR] failed to check finalization:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}
	latest, err := ctrl.Service.Latest(candidate, part)
	if err != nil {
		log.Println("[ERROR] failed to load latest submission:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}

	content := ""
	if latest != nil {
		content = latest.Content
	}
	return c.Render("part", fiber.Map{
		"CandidateName": candidate,
		"Part":          part,
		"PartParam":     part.Param(),
		"Content":       content,
		"Locked":        finalized,
	})
}

// POST /submit/:id
func (ctrl *AttemptController) SubmitPart(c *fiber.Ctx) error {
	candidate := helper.GetCandidateName(c)
	if candidate == "" {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}
	part, ok := service.ParseParam(c.Params("id"))
	if !ok {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}

	// Content defaults to empty when the field is absent.
	var req dto.SubmitPartRequest
	_ = c.BodyParser(&req)

	next, toFinalize, err := ctrl.Service.Submit(candidate, part, req.Content)
	if errors.Is(err, service.ErrAttemptLocked) {
		return helper.Error(c, fiber.StatusForbidden,
			"this attempt has been finalized; no further submissions are accepted")
	}
	if err != nil {
		log.Println("[ERROR] failed to record submission:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}

	if toFinalize {
		return c.Redirect("/finalize", fiber.StatusSeeOther)
	}
	return c.Redirect("/part/"+next.Param(), fiber.StatusSeeOther)
}

// GET /finalize
func (ctrl *AttemptController) ShowFinalize(c *fiber.Ctx) error {
	candidate := helper.GetCandidateName(c)
	if candidate == "" {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}

	prog, err := ctrl.Service.Progress(candidate)
	if err != nil {
		log.Println("[ERROR] failed to load progress:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}
	return c.Render("finalize", fiber.Map{
		"CandidateName": candidate,
		"Progress":      prog,
	})
}

// POST /finalize
func (ctrl *AttemptController) Finalize(c *fiber.Ctx) error {
	candidate := helper.GetCandidateName(c)
	if candidate == "" {
		return c.Redirect("/test", fiber.StatusSeeOther)
	}

	err := ctrl.Service.Finalize(candidate)
	var incomplete *service.IncompletePartsError
	if errors.As(err, &incomplete) {
		return helper.Error(c, fiber.StatusBadRequest, incomplete.Error())
	}
	if err != nil {
		log.Println("[ERROR] failed to finalize attempt:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "something went wrong")
	}
	return c.Redirect("/finalize", fiber.StatusSeeOther)
}
