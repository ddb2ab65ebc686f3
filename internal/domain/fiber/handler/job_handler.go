package handler

import (
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/dto"
	"github.com/fadilmartias/recruit-assistant/internal/middleware"
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/jobs", auth, h.Page)
	app.Get("/api/jobs", auth, h.List)
	app.Post("/api/jobs", auth, h.Create)
	app.Delete("/api/jobs/:id", auth, h.Delete)
	app.Post("/api/jobs/suggest-skills", auth, middleware.RateLimiter(10, time.Minute), h.SuggestSkills)
}

func (h *JobHandler) Page(c *fiber.Ctx) error {
	jobs, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, "failed to load jobs", err)
	}
	return c.Render("jobs", fiber.Map{"Title": "Jobs", "Jobs": dto.NewJobDTOs(jobs)}, "layouts/main")
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, "failed to load jobs", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get jobs",
		Data:    dto.NewJobDTOs(jobs),
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	job, err := h.uc.Create(c.UserContext(), usecase.NewJob{
		Name:         req.Name,
		Requirements: req.Requirements,
		KeySkills:    req.KeySkills,
		Location:     req.Location,
		ContractType: req.ContractType,
	})
	if err != nil {
		return fail(c, "failed to create job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, "invalid job id", err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, "failed to delete job", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Job deleted"})
}

func (h *JobHandler) SuggestSkills(c *fiber.Ctx) error {
	var req dto.SuggestSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	skills, err := h.uc.SuggestSkills(c.UserContext(), req.Description)
	if err != nil {
		return fail(c, "failed to suggest skills", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success suggest skills",
		Data:    fiber.Map{"skills": skills},
	})
}
