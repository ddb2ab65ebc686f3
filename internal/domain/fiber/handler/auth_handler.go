package handler

import (
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/dto"
	"github.com/fadilmartias/recruit-assistant/internal/middleware"
	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type AuthHandler struct {
	uc    *usecase.AuthUsecase
	store *session.Store
}

func NewAuthHandler(uc *usecase.AuthUsecase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/", h.LoginPage)
	app.Post("/api/login", middleware.RateLimiter(10, time.Minute), h.Login)
	app.Post("/api/register", middleware.RateLimiter(5, time.Minute), h.Register)
	app.Post("/api/logout", auth, h.Logout)
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		if _, ok := sess.Get(middleware.SessionUserKey).(uint); ok {
			return c.Redirect("/home", fiber.StatusSeeOther)
		}
	}
	return c.Render("login", fiber.Map{"Title": "Login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	user, err := h.uc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, "login failed", err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, "could not start session", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fail(c, "could not start session", err)
	}
	sess.Set(middleware.SessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return fail(c, "could not start session", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Login successful",
		Data:    dto.UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body", err)
	}

	user, err := h.uc.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, "registration failed", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Registration successful",
		Data:    dto.UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, "logout failed", err)
	}
	if err := sess.Destroy(); err != nil {
		return fail(c, "logout failed", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Logged out"})
}
