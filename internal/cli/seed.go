package cli

import (
	"errors"
	"fmt"

	"talent-match/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial HR account from seed.admin_email / seed.admin_password",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	c, zl, err := newContainer()
	if err != nil {
		return err
	}
	defer c.Close()

	seeders := seeder.Defaults(c.Config.Seed)
	if len(seeders) == 0 {
		return errors.New("nothing to seed: set TALENT_SEED__ADMIN_PASSWORD")
	}
	if err := (seeder.Runner{Seeders: seeders, Logger: zl}).Run(cmd.Context(), c.DB); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", c.Config.Seed.AdminEmail)
	return nil
}
