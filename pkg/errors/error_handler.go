package errors

import (
	stdErrors "errors"

	"creovibe/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error code to the HTTP status used when the error ends the request.
func StatusFor(code Code) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeExternal:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// NewErrorHandler renders the "error" view for anything a handler returns.
// Most handlers turn failures into flash messages themselves; what reaches here
// is not-found, oversize bodies and genuine internal errors.
func NewErrorHandler(logg *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if ae, ok := As(err); ok {
			status = StatusFor(ae.Code)
			message = ae.Message
			if ae.Err != nil && logg != nil && status >= fiber.StatusInternalServerError {
				logg.Error(c.UserContext(), "request failed", ae.Err)
			}
		} else if stdErrors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		} else if logg != nil {
			logg.Error(c.UserContext(), "unexpected error", err)
		}

		c.Status(status)
		if renderErr := c.Render("error", fiber.Map{
			"Title":   message,
			"Status":  status,
			"Message": message,
		}); renderErr != nil {
			return c.SendString(message)
		}
		return nil
	}
}
