package middleware

import (
	"errors"
	"time"

	appErrors "creovibe/pkg/errors"
	"creovibe/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Logging attaches the request id to the user context and logs one line per
// request once the handler chain returns.
func Logging(logg *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			ctx = logg.WithRequestID(ctx, rid)
		}
		ctx = logg.WithFields(ctx, map[string]any{
			"method": c.Method(),
			"path":   c.Path(),
		})
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusForError(err)
		}
		logg.Info(logg.WithFields(ctx, map[string]any{
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		}), "request.complete")
		return err
	}
}

func statusForError(err error) int {
	if ae, ok := appErrors.As(err); ok {
		return appErrors.StatusFor(ae.Code)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
