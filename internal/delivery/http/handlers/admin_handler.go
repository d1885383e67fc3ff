package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/entities"
	"creovibe/internal/usecases"
	appErrors "creovibe/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type AdminHandler struct {
	media  usecases.MediaService
	render *Renderer
}

func NewAdminHandler(media usecases.MediaService, render *Renderer) *AdminHandler {
	return &AdminHandler{media: media, render: render}
}

func selectedPage(c *fiber.Ctx) entities.Page {
	return entities.ParsePage(c.Query("page"), entities.PageHome)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	view, err := h.media.Dashboard(c.UserContext(), selectedPage(c))
	if err != nil {
		return err
	}
	return h.render.Render(c, "admin_dashboard", "Dashboard", view)
}

// Upload always ends in a redirect back to the dashboard of the target page.
func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	page := entities.ParsePage(c.FormValue("page_name"), selectedPage(c))
	redirect := "/admin?page=" + page.String()

	req := dto.UploadMediaDTO{
		Caption:   c.FormValue("caption"),
		Page:      page,
		ServiceID: c.FormValue("service_id"),
		IsHero:    c.FormValue("is_hero") != "",
	}

	header, err := c.FormFile("media")
	switch {
	case errors.Is(err, fasthttp.ErrMissingFile), errors.Is(err, fasthttp.ErrNoMultipartForm):
	case err != nil:
		h.render.Error(c, flashMessage(appErrors.ErrUploadFailed(err)))
		return c.Redirect(redirect)
	default:
		src, err := header.Open()
		if err != nil {
			h.render.Error(c, flashMessage(appErrors.ErrUploadFailed(err)))
			return c.Redirect(redirect)
		}
		defer src.Close()
		req.Filename = header.Filename
		req.Content = src
	}

	if _, err := h.media.Upload(c.UserContext(), req); err != nil {
		h.render.Error(c, flashMessage(err))
		return c.Redirect(redirect)
	}
	h.render.Success(c, fmt.Sprintf("Media uploaded to %s successfully!", page))
	return c.Redirect(redirect)
}

// Delete answers unknown ids with 404; other failures become a flash message.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.media.Delete(c.UserContext(), uint(id)); err != nil {
		if appErrors.IsCode(err, appErrors.CodeNotFound) {
			return err
		}
		h.render.Error(c, flashMessage(err))
	} else {
		h.render.Success(c, "Media deleted successfully!")
	}
	return c.Redirect(sameOriginPath(c, c.Get(fiber.HeaderReferer), "/admin"))
}
