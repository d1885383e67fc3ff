package handlers

import (
	"time"

	"creovibe/internal/usecases"
	"creovibe/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth         usecases.AuthService
	render       *Renderer
	cookieSecure bool
}

func NewAuthHandler(auth usecases.AuthService, render *Renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, render: render, cookieSecure: cookieSecure}
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return h.render.Render(c, "admin_login", "Admin login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	token, err := h.auth.Login(c.UserContext(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		h.render.Error(c, flashMessage(err))
		return c.Redirect("/admin/login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.AdminCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.auth.TTL()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.render.Success(c, "Logged in successfully!")
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     constants.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.render.Success(c, "Logged out successfully.")
	return c.Redirect("/")
}
