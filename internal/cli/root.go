// Package cli implements talentctl, the operator command line for the
// matching service.
package cli

import (
	"fmt"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	debug bool

	rootCmd = &cobra.Command{
		Use:   "talentctl",
		Short: "Operate the talent-match service: migrations, rankings and exports",
		Long: `talentctl talks to the same Postgres and Redis as the API server.
Configuration comes from TALENT_CONFIG and TALENT_* environment variables.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug logging")
}

// newContainer loads configuration and connects to the backing stores. The
// caller closes the container.
func newContainer() (*app.Container, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	zl, err := logger.New(false, debug)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	if !debug {
		zl = zap.NewNop()
	}

	c, err := app.NewContainer(cfg, zl)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return c, zl, nil
}
