package main

import (
	"bufio"
	"fmt"
	"strings"

	"creovibe/internal/usecases"

	"github.com/spf13/cobra"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "hash-password [password]",
		Short:       "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:        "Print a bcrypt hash for ADMIN_PASSWORD_HASH. Without an argument the password is read from the first line of stdin.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			hash, err := usecases.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
