package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"creovibe/internal/delivery/http/routers"
	"creovibe/internal/infrastructure/db"
	"creovibe/internal/infrastructure/mail"
	infra_repo "creovibe/internal/infrastructure/repositories"
	"creovibe/internal/infrastructure/sessionstore"
	"creovibe/internal/infrastructure/storage"
	"creovibe/internal/pkg/config"
	"creovibe/internal/usecases"
	"creovibe/pkg/logger"
	"creovibe/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logg := logger.New(logger.Options{
		ServiceName: "creovibe",
		Level:       logger.ParseLevel(cfg.Server.LogLevel),
		Format:      cfg.Server.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.Database, logg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx, logg); err != nil {
		return err
	}

	files, err := storage.FromConfig(ctx, cfg.Upload)
	if err != nil {
		return err
	}

	var sessions fiber.Storage
	if cfg.Redis.Addr != "" {
		rs, err := sessionstore.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		sessions = rs
	}

	if !cfg.Mail.Enabled() {
		logg.Warn(ctx, "mail relay not configured, contact form submissions will fail")
	}

	site := metrics.New()
	app := routers.NewApp(routers.Deps{
		Config:         cfg,
		Logger:         logg,
		DB:             database,
		Storage:        files,
		Mailer:         mail.NewSMTPMailer(cfg.Mail, logg),
		Metrics:        site,
		SessionStorage: sessions,
	})

	scheduler, err := scheduleReconcile(ctx, cfg.Reconcile, usecases.NewReconcileService(
		infra_repo.NewMediaRepository(database.DB()), files, cfg.Reconcile.Grace, logg, site,
	), logg)
	if err != nil {
		return err
	}
	if scheduler != nil {
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	listenErr := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", cfg.Server.Addr()), "server starting")
		listenErr <- app.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}
	logg.Info(context.Background(), "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logg.Info(context.Background(), "server stopped")
	return nil
}

// scheduleReconcile returns nil when RECONCILE_CRON is empty.
func scheduleReconcile(ctx context.Context, cfg config.ReconcileConfig, svc usecases.ReconcileService, logg *logger.Logger) (*cron.Cron, error) {
	if cfg.Schedule == "" {
		logg.Info(ctx, "reconcile schedule disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule, func() {
		if _, err := svc.Run(context.WithoutCancel(ctx), false); err != nil {
			logg.Error(ctx, "scheduled reconcile failed", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_CRON %q: %w", cfg.Schedule, err)
	}
	return c, nil
}
