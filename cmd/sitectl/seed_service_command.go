package main

import (
	"errors"
	"fmt"
	"strings"

	"creovibe/internal/domain/entities"
	infra_repo "creovibe/internal/infrastructure/repositories"

	"github.com/spf13/cobra"
)

func newSeedServiceCommand(ctx *commandContext) *cobra.Command {
	var name, description, image string

	cmd := &cobra.Command{
		Use:   "seed-service",
		Short: "Create a service that media can be linked to",
		RunE: func(cmd *cobra.Command, args []string) error {
			name = strings.TrimSpace(name)
			description = strings.TrimSpace(description)
			if name == "" || description == "" {
				return errors.New("--name and --description are required")
			}
			if len(name) > 100 {
				return errors.New("--name must be at most 100 characters")
			}

			database, err := ctx.db(cmd.Context(), commandLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			service := &entities.Service{Name: name, Description: description}
			if image = strings.TrimSpace(image); image != "" {
				service.Image = &image
			}
			if err := infra_repo.NewServiceRepository(database.DB()).Create(cmd.Context(), service); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created service %d: %s\n", service.ID, service.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Service name")
	cmd.Flags().StringVar(&description, "description", "", "Service description")
	cmd.Flags().StringVar(&image, "image", "", "Optional image path or URL")
	return cmd
}
