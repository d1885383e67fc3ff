package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

const (
	defaultServiceName        = "Photography"
	defaultServiceDescription = "Commercial & brand photography services"
)

func init() {
	goose.AddMigrationContext(upSeedDefaultService, downSeedDefaultService)
}

func upSeedDefaultService(ctx context.Context, tx *sql.Tx) error {
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM service;`).Scan(&count); err != nil {
		return fmt.Errorf("could not count services: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO service (name, description) VALUES (?, ?);`,
		defaultServiceName, defaultServiceDescription,
	); err != nil {
		return fmt.Errorf("could not seed default service: %w", err)
	}
	return nil
}

func downSeedDefaultService(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM service WHERE name = ? AND description = ? AND id NOT IN (SELECT service_id FROM media WHERE service_id IS NOT NULL);`,
		defaultServiceName, defaultServiceDescription,
	)
	return err
}
