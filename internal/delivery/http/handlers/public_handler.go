package handlers

import (
	"strconv"

	"creovibe/internal/domain/entities"
	"creovibe/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

type PublicHandler struct {
	pages  usecases.PageService
	render *Renderer
}

func NewPublicHandler(pages usecases.PageService, render *Renderer) *PublicHandler {
	return &PublicHandler{pages: pages, render: render}
}

// Page renders a hero plus media list page such as home, about or portfolio.
func (h *PublicHandler) Page(page entities.Page, template, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := h.pages.Page(c.UserContext(), page)
		if err != nil {
			return err
		}
		return h.render.Render(c, template, title, view)
	}
}

func (h *PublicHandler) Services(c *fiber.Ctx) error {
	view, err := h.pages.Services(c.UserContext())
	if err != nil {
		return err
	}
	return h.render.Render(c, "services", "Services", view)
}

func (h *PublicHandler) ServiceDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return fiber.ErrNotFound
	}
	view, err := h.pages.ServiceDetail(c.UserContext(), uint(id))
	if err != nil {
		return err
	}
	return h.render.Render(c, "service_detail", view.Service.Name, view)
}
