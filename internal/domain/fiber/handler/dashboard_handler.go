package handler

import (
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/home", auth, h.Home)
	app.Get("/api/dashboard", auth, h.Stats)
}

func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fail(c, "failed to load dashboard", err)
	}
	return c.Render("dashboard", fiber.Map{"Title": "Dashboard", "Stats": stats}, "layouts/main")
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fail(c, "failed to load dashboard", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get dashboard statistics",
		Data:    stats,
	})
}
