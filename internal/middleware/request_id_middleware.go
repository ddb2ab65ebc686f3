package middleware

import (
	"github.com/fadilmartias/recruit-assistant/internal/logger"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID assigns every request an id, echoes it in X-Request-ID and puts
// it on the user context so slog calls made with c.UserContext() carry it.
func RequestID() []fiber.Handler {
	return []fiber.Handler{
		requestid.New(requestid.Config{
			Header:    fiber.HeaderXRequestID,
			Generator: uuid.NewString,
		}),
		func(c *fiber.Ctx) error {
			c.SetUserContext(logger.WithRequestID(c.UserContext(), util.RequestID(c)))
			return c.Next()
		},
	}
}
