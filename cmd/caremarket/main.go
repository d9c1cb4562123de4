// Command caremarket serves the care marketplace API and runs its reports.
//
//	caremarket migrate
//	caremarket serve
//	caremarket report list
//	caremarket report run search-requirements --param term=gentle
//	caremarket report all
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GenghisKhal/assignment3/internal/config"
	"github.com/GenghisKhal/assignment3/internal/database"
	"github.com/GenghisKhal/assignment3/internal/logger"
)

// app carries what every command loads before it runs.
type app struct {
	cfg           *config.Config
	logger        zerolog.Logger
	loggerService *logger.LoggerService
}

// skipConfig marks commands that run without configuration or logging.
const skipConfig = "caremarket/skip-config"

func main() {
	a := &app{}

	if err := newRootCommand(a).ExecuteContext(context.Background()); err != nil {
		if a.loggerService != nil {
			a.logger.Error().Err(err).Msg("command failed")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "caremarket",
		Short:         "Care marketplace API and reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[skipConfig]; ok {
				return nil
			}
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.loggerService.Shutdown()
		},
	}

	root.AddCommand(
		newMigrateCommand(a),
		newServeCommand(a),
		newReportCommand(a),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.loggerService = loggerService
	a.logger = logger.NewLoggerWithService(cfg.Observability, loggerService)
	return nil
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := database.Migrate(cmd.Context(), &a.logger, a.cfg); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			a.logger.Info().Msg("database migrated")
			return nil
		},
	}
}
