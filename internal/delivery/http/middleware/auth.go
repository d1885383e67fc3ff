package middleware

import (
	"creovibe/internal/usecases"
	"creovibe/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

const LoginPath = "/admin/login"

// RequireAdmin verifies the session cookie on every request and exposes the
// claims through c.Locals for the rest of the chain.
func RequireAdmin(auth usecases.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := auth.Verify(c.Cookies(constants.AdminCookieName))
		if err != nil {
			return c.Redirect(LoginPath)
		}
		c.Locals(constants.LocalsAdminKey, claims)
		return c.Next()
	}
}

// Admin returns the claims stored by RequireAdmin, or nil outside the admin group.
func Admin(c *fiber.Ctx) *usecases.AdminClaims {
	claims, _ := c.Locals(constants.LocalsAdminKey).(*usecases.AdminClaims)
	return claims
}
