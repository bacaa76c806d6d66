package cli

import (
	"fmt"

	"talent-match/internal/database/migration"
	"talent-match/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c, zl, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Close()

	applied, err := migration.Runner{Files: migrations.Source(c.Config.Database.MigrationsDir), Logger: zl}.Run(cmd.Context(), c.DB.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
	return nil
}
