package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type Registrar interface {
	RegisterRoutes(app *fiber.App, auth fiber.Handler)
}

// Register mounts every handler's routes. auth guards the private ones.
func Register(app *fiber.App, auth fiber.Handler, handlers ...Registrar) {
	for _, h := range handlers {
		h.RegisterRoutes(app, auth)
	}
}

// ErrorHandler answers errors that escaped a handler. Pages get the error
// template, everything else the JSON envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		slog.ErrorContext(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
	}

	if wantsHTML(c) {
		renderErr := c.Status(code).Render("error", fiber.Map{
			"Title":   message,
			"Code":    code,
			"Message": message,
		}, "layouts/main")
		if renderErr == nil {
			return nil
		}
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
}

func wantsHTML(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/export/") {
		return false
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMETextHTML
}
