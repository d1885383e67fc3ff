package routers

import (
	"creovibe/internal/delivery/http/handlers"
	"creovibe/internal/delivery/http/middleware"
	"creovibe/internal/domain/repositories"
	"creovibe/internal/infrastructure/db"
	infra_repo "creovibe/internal/infrastructure/repositories"
	"creovibe/internal/pkg/config"
	"creovibe/pkg/constants"
	appErrors "creovibe/pkg/errors"
	"creovibe/pkg/logger"
	"creovibe/pkg/metrics"
	"creovibe/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Deps are the long-lived collaborators built by the server command.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      *db.Client
	Storage repositories.StorageStrategy
	Mailer  repositories.Mailer
	Metrics *metrics.Site
	// SessionStorage backs flash messages; nil keeps them in memory.
	SessionStorage fiber.Storage
}

// NewApp builds the fiber app with every route registered.
func NewApp(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             int(d.Config.Upload.MaxFileSize),
		Views:                 web.NewEngine(),
		ViewsLayout:           web.Layout,
		ErrorHandler:          appErrors.NewErrorHandler(d.Logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.Logging(d.Logger))

	mediaRepo := infra_repo.NewMediaRepository(d.DB.DB())
	serviceRepo := infra_repo.NewServiceRepository(d.DB.DB())
	render := handlers.NewRenderer(middleware.NewFlashStore(d.SessionStorage, d.Config.Admin.CookieSecure))

	SetupPublicRoutes(app, d, mediaRepo, serviceRepo, render)
	SetupAdminRoutes(app, d, mediaRepo, serviceRepo, render)

	health := handlers.NewHealthHandler(d.DB)
	app.Get("/healthz", health.Health)
	app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))

	if d.Config.Upload.Driver == config.StorageDriverLocal {
		app.Use(constants.UploadsRoute, cors.New(cors.Config{AllowMethods: "GET,HEAD"}))
		app.Static(constants.UploadsRoute, d.Config.Upload.UploadsDir)
	}

	return app
}
