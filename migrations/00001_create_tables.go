package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTables, downCreateTables)
}

func upCreateTables(ctx context.Context, tx *sql.Tx) error {
	createServiceTable := `
	CREATE TABLE service (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		image VARCHAR(200)
	);
	`
	if _, err := tx.ExecContext(ctx, createServiceTable); err != nil {
		return fmt.Errorf("could not create service table: %w", err)
	}

	createMediaTable := `
	CREATE TABLE media (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename VARCHAR(300) NOT NULL,
		caption VARCHAR(300),
		media_type VARCHAR(10) NOT NULL CHECK (media_type IN ('image', 'video')),
		is_hero BOOLEAN NOT NULL DEFAULT 0,
		page_name VARCHAR(50) NOT NULL DEFAULT 'home' CHECK (page_name IN ('home', 'about', 'services', 'portfolio')),
		service_id INTEGER REFERENCES service(id),
		created_at DATETIME
	);
	`
	if _, err := tx.ExecContext(ctx, createMediaTable); err != nil {
		return fmt.Errorf("could not create media table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX idx_media_page_name ON media(page_name);`,
		`CREATE INDEX idx_media_service_id ON media(service_id);`,
		`CREATE UNIQUE INDEX idx_media_filename ON media(filename);`,
	}
	for _, stmt := range indexes {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create index: %w", err)
		}
	}
	return nil
}

func downCreateTables(ctx context.Context, tx *sql.Tx) error {
	// media first, it references service
	for _, table := range []string{"media", "service"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}
