package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"creovibe/internal/delivery/http/middleware"
	"creovibe/pkg/constants"
	appErrors "creovibe/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// Renderer fills the layout fields shared by every page.
type Renderer struct {
	flash *middleware.FlashStore
}

func NewRenderer(flash *middleware.FlashStore) *Renderer {
	return &Renderer{flash: flash}
}

func (r *Renderer) Render(c *fiber.Ctx, name, title string, view any) error {
	return c.Render(name, fiber.Map{
		"Title":    title,
		"Flashes":  r.flash.Pop(c),
		"LoggedIn": middleware.Admin(c) != nil,
		"View":     view,
	})
}

func (r *Renderer) Success(c *fiber.Ctx, message string) {
	r.push(c, constants.FlashSuccess, message)
}

func (r *Renderer) Error(c *fiber.Ctx, message string) {
	r.push(c, constants.FlashError, message)
}

func (r *Renderer) push(c *fiber.Ctx, kind, message string) {
	// losing a flash must not fail the redirect
	_ = r.flash.Push(c, kind, message)
}

// flashMessage renders an error for the admin or visitor. Persistence and relay
// errors include their cause.
func flashMessage(err error) string {
	ae, ok := appErrors.As(err)
	if !ok {
		return err.Error()
	}
	if ae.Err != nil && (ae.Code == appErrors.CodePersistence || ae.Code == appErrors.CodeExternal) {
		return fmt.Sprintf("%s: %v", ae.Message, ae.Err)
	}
	return ae.Message
}

// sameOriginPath returns the path and query of ref when it points at this
// host, otherwise fallback.
func sameOriginPath(c *fiber.Ctx, ref, fallback string) string {
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != string(c.Request().Host())) {
		return fallback
	}
	// "//host" and "/\host" are read by browsers as another origin
	if u.Path == "" || u.Path[0] != '/' || strings.HasPrefix(u.Path, "//") || strings.HasPrefix(u.Path, "/\\") {
		return fallback
	}
	path := u.EscapedPath()
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}
