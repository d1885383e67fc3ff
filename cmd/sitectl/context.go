package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"creovibe/internal/infrastructure/db"
	"creovibe/internal/pkg/config"
	"creovibe/pkg/logger"
)

type commandContext struct {
	envFile *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	database *db.Client
}

func newCommandContext(envFile *string) *commandContext {
	return &commandContext{envFile: envFile}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var files []string
		if c.envFile != nil && strings.TrimSpace(*c.envFile) != "" {
			files = append(files, strings.TrimSpace(*c.envFile))
		}
		cfg, err := config.Load(files...)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirs(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// db opens the database once per invocation; close releases it.
func (c *commandContext) db(ctx context.Context, logg *logger.Logger) (*db.Client, error) {
	if c.database != nil {
		return c.database, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := db.New(ctx, cfg.Database, logg)
	if err != nil {
		return nil, err
	}
	c.database = client
	return client, nil
}

func (c *commandContext) close() error {
	if c.database == nil {
		return nil
	}
	err := c.database.Close()
	c.database = nil
	return err
}

func commandLogger(out io.Writer) *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "sitectl",
		Format:      "console",
		Output:      out,
	})
}
