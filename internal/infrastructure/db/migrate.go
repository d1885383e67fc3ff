package db

import (
	"context"
	"fmt"
	"os"
	"sync"

	"creovibe/migrations"
	"creovibe/pkg/logger"

	"github.com/pressly/goose/v3"
)

// goose keeps its dialect, base FS and logger in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration.
func (c *Client) Migrate(ctx context.Context, logg *logger.Logger) error {
	return c.runGoose(ctx, logg, "up")
}

// MigrateDown rolls back the latest migration.
func (c *Client) MigrateDown(ctx context.Context, logg *logger.Logger) error {
	return c.runGoose(ctx, logg, "down")
}

// MigrationStatus logs the applied state of each migration.
func (c *Client) MigrationStatus(ctx context.Context, logg *logger.Logger) error {
	return c.runGoose(ctx, logg, "status")
}

func (c *Client) runGoose(ctx context.Context, logg *logger.Logger, command string) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}
	if logg == nil {
		logg = logger.Nop()
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&gooseLogger{ctx: ctx, logg: logg})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var runErr error
	switch command {
	case "up":
		runErr = goose.UpContext(ctx, sqlDB, ".")
	case "down":
		runErr = goose.DownContext(ctx, sqlDB, ".")
	case "status":
		runErr = goose.StatusContext(ctx, sqlDB, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if runErr != nil {
		return fmt.Errorf("goose %s: %w", command, runErr)
	}
	return nil
}

type gooseLogger struct {
	ctx  context.Context
	logg *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.logg.Info(g.ctx, fmt.Sprintf(format, v...))
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logg.Error(g.ctx, fmt.Sprintf(format, v...), nil)
	os.Exit(1)
}
