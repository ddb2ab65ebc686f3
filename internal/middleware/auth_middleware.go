package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionUserKey = "user_id"
	LocalsUserID   = "user_id"
)

func NewSessionStore(ttl time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

// RequireAuth lets through requests whose session holds a user id. API calls
// get a 401 envelope, pages are redirected to the login page.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			slog.WarnContext(c.UserContext(), "session lookup failed", "error", err)
			return unauthorized(c)
		}
		userID, ok := sess.Get(SessionUserKey).(uint)
		if !ok || userID == 0 {
			return unauthorized(c)
		}
		c.Locals(LocalsUserID, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || c.Query("format") == "json" || c.Query("job_id") != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "login required",
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// UserID returns the id set by RequireAuth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalsUserID).(uint)
	return id
}
