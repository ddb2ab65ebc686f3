package handler

import (
	"errors"
	"strconv"

	"github.com/fadilmartias/recruit-assistant/internal/dto"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CandidateHandler struct {
	uc   *usecase.CandidateUsecase
	jobs *usecase.JobUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase, jobs *usecase.JobUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc, jobs: jobs}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/candidates", auth, h.Ranking)
	app.Get("/candidates/:id", auth, h.DetailPage)
	app.Get("/api/candidates", auth, h.Page)
	app.Get("/api/candidates/:id", auth, h.Detail)
	app.Post("/api/candidates/:id/reject", auth, h.Reject)
	app.Delete("/api/candidates/:id", auth, h.Delete)
}

// Ranking renders the ranking page. With job_id it answers JSON ranked by
// skill match; with format=json it answers JSON ranked by score.
func (h *CandidateHandler) Ranking(c *fiber.Ctx) error {
	var jobID uint
	if raw := c.Query("job_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return badRequest(c, "invalid job_id", err)
		}
		jobID = uint(id)
	}

	ranked, job, err := h.uc.Rank(c.UserContext(), jobID)
	if err != nil {
		return fail(c, "failed to rank candidates", err)
	}
	rows := make([]dto.CandidateSummaryDTO, len(ranked))
	for i := range ranked {
		rows[i] = dto.NewCandidateSummaryDTO(&ranked[i].Candidate, ranked[i].Match)
	}

	if job != nil {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success rank candidates",
			Data:    fiber.Map{"job": dto.NewJobDTO(job), "candidates": rows},
		})
	}
	if c.Query("format") == "json" {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success rank candidates",
			Data:    fiber.Map{"candidates": rows},
		})
	}

	jobs, err := h.jobs.List(c.UserContext())
	if err != nil {
		return fail(c, "failed to load jobs", err)
	}
	return c.Render("candidates", fiber.Map{
		"Title":      "Candidates",
		"Candidates": rows,
		"Jobs":       dto.NewJobDTOs(jobs),
	}, "layouts/main")
}

func (h *CandidateHandler) Page(c *fiber.Ctx) error {
	q := usecase.PageQuery{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", usecase.DefaultPageSize),
		MinScore: c.QueryInt("min_score", 0),
	}
	switch status := model.CandidateStatus(c.Query("status")); status {
	case "", model.StatusActive, model.StatusRejected:
		q.Status = status
	default:
		return badRequest(c, "status must be active or rejected", nil)
	}

	list, pagination, err := h.uc.Page(c.UserContext(), q)
	if err != nil {
		return fail(c, "failed to list candidates", err)
	}
	rows := make([]dto.CandidateSummaryDTO, len(list))
	for i := range list {
		rows[i] = dto.NewCandidateSummaryDTO(&list[i], nil)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get candidates",
		Data:       rows,
		Pagination: pagination,
	})
}

func (h *CandidateHandler) DetailPage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	candidate, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCandidateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return c.Render("candidate", fiber.Map{
		"Title":     candidate.Name,
		"Candidate": dto.NewCandidateDetailDTO(candidate),
	}, "layouts/main")
}

func (h *CandidateHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, "invalid candidate id", err)
	}
	candidate, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "failed to get candidate", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    dto.NewCandidateDetailDTO(candidate),
	})
}

func (h *CandidateHandler) Reject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, "invalid candidate id", err)
	}
	if err := h.uc.Reject(c.UserContext(), id); err != nil {
		return fail(c, "failed to reject candidate", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Candidate rejected"})
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, "invalid candidate id", err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, "failed to delete candidate", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Candidate deleted"})
}
