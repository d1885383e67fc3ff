package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logg := commandLogger(cmd.ErrOrStderr())
			database, err := ctx.db(cmd.Context(), logg)
			if err != nil {
				return err
			}
			return database.Migrate(cmd.Context(), logg)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			logg := commandLogger(cmd.ErrOrStderr())
			database, err := ctx.db(cmd.Context(), logg)
			if err != nil {
				return err
			}
			return database.MigrateDown(cmd.Context(), logg)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			logg := commandLogger(cmd.OutOrStdout())
			database, err := ctx.db(cmd.Context(), logg)
			if err != nil {
				return err
			}
			return database.MigrationStatus(cmd.Context(), logg)
		},
	})

	return migrateCmd
}
