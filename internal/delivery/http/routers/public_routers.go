package routers

import (
	"creovibe/internal/delivery/http/handlers"
	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/repositories"
	"creovibe/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupPublicRoutes(
	app *fiber.App,
	d Deps,
	mediaRepo repositories.MediaRepository,
	serviceRepo repositories.ServiceRepository,
	render *handlers.Renderer,
) {
	pageService := usecases.NewPageService(mediaRepo, serviceRepo, d.Storage)
	contactService := usecases.NewContactService(d.Mailer, d.Logger, d.Metrics)

	public := handlers.NewPublicHandler(pageService, render)
	contact := handlers.NewContactHandler(contactService, render)

	app.Get("/", public.Page(entities.PageHome, "home", "Home"))
	app.Get("/about", public.Page(entities.PageAbout, "about", "About"))
	app.Get("/portfolio", public.Page(entities.PagePortfolio, "portfolio", "Portfolio"))
	app.Get("/services", public.Services)
	app.Get("/services/:id", public.ServiceDetail)
	app.Get("/contact", contact.Form)
	app.Post("/contact", contact.Send)
}
