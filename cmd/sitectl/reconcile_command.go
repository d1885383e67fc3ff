package main

import (
	"fmt"

	infra_repo "creovibe/internal/infrastructure/repositories"
	"creovibe/internal/infrastructure/storage"
	"creovibe/internal/usecases"

	"github.com/spf13/cobra"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Remove stored files that no media row references",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logg := commandLogger(cmd.ErrOrStderr())
			database, err := ctx.db(cmd.Context(), logg)
			if err != nil {
				return err
			}
			files, err := storage.FromConfig(cmd.Context(), cfg.Upload)
			if err != nil {
				return err
			}

			svc := usecases.NewReconcileService(infra_repo.NewMediaRepository(database.DB()), files, cfg.Reconcile.Grace, logg, nil)
			report, err := svc.Run(cmd.Context(), dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range report.Orphans {
				fmt.Fprintf(out, "orphan file: %s\n", name)
			}
			for _, name := range report.Missing {
				fmt.Fprintf(out, "missing file for row: %s\n", name)
			}
			fmt.Fprintf(out, "orphans=%d removed=%d missing=%d\n", len(report.Orphans), len(report.Removed), len(report.Missing))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report orphans without deleting them")
	return cmd
}
