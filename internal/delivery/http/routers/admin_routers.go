package routers

import (
	"creovibe/internal/delivery/http/handlers"
	"creovibe/internal/delivery/http/middleware"
	"creovibe/internal/domain/repositories"
	"creovibe/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(
	app *fiber.App,
	d Deps,
	mediaRepo repositories.MediaRepository,
	serviceRepo repositories.ServiceRepository,
	render *handlers.Renderer,
) {
	authService := usecases.NewAuthService(d.Config.Admin, d.Logger)
	mediaService := usecases.NewMediaService(
		d.DB,
		mediaRepo,
		serviceRepo,
		d.Storage,
		d.Config.Upload.AllowedExtensions,
		d.Logger,
		d.Metrics,
	)

	auth := handlers.NewAuthHandler(authService, render, d.Config.Admin.CookieSecure)
	admin := handlers.NewAdminHandler(mediaService, render)

	guard := middleware.RequireAdmin(authService)

	// Routes:
	group := app.Group("/admin")
	group.Get("/login", auth.LoginPage)
	group.Post("/login", auth.Login)
	group.Get("/logout", guard, auth.Logout)
	group.Get("/", guard, admin.Dashboard)
	group.Post("/", guard, admin.Upload)
	group.Post("/delete/:id", guard, admin.Delete)
}
