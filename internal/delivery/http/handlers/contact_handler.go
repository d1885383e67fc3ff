package handlers

import (
	"fmt"

	"creovibe/internal/domain/dto"
	"creovibe/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contact usecases.ContactService
	render  *Renderer
}

func NewContactHandler(contact usecases.ContactService, render *Renderer) *ContactHandler {
	return &ContactHandler{contact: contact, render: render}
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return h.render.Render(c, "contact", "Contact", nil)
}

// Send relays synchronously; the outcome is only ever a flash message.
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	name, err := h.contact.Send(c.UserContext(), dto.ContactMessageDTO{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	})
	if err != nil {
		h.render.Error(c, flashMessage(err))
	} else {
		h.render.Success(c, fmt.Sprintf("Thanks %s, your message was sent successfully!", name))
	}
	return c.Redirect("/contact")
}
