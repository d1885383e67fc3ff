package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upUniqueHeroPerPage, downUniqueHeroPerPage)
}

// A second concurrent hero upload for the same page fails on this index
// instead of silently leaving two heroes behind.
func upUniqueHeroPerPage(ctx context.Context, tx *sql.Tx) error {
	stmt := `CREATE UNIQUE INDEX ux_media_hero_per_page ON media(page_name) WHERE is_hero = 1;`
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("could not create hero index: %w", err)
	}
	return nil
}

func downUniqueHeroPerPage(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS ux_media_hero_per_page;`); err != nil {
		return fmt.Errorf("could not drop hero index: %w", err)
	}
	return nil
}
