package main

import (
	"fmt"
	"pubapis"
	"pubapis/pkg/logger"

	"github.com/spf13/cobra"
)

// migrateCommand constructs the 'migrate' subcommand that applies the price
// history migrations to the latest version using goose.
func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the price history database to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := a.getPostgres(ctx)
			if err != nil {
				return err
			}
			defer closeStrg()

			if err := strg.Migrate(ctx, pubapis.Migrations, pubapis.MigrationsDir); err != nil {
				return fmt.Errorf("could not migrate pgsql: %w", err)
			}
			logger.Info(ctx, "database migrated")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✅ Database is up to date.")

			return nil
		},
	}
}
