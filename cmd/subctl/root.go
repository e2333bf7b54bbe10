package main

import (
	"database/sql"
	"fmt"

	"teacher-substitution/app/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env carries what every subcommand needs once PersistentPreRunE has run.
type env struct {
	cfg    *config.Config
	db     *sql.DB
	logger *zap.Logger
}

// close releases the database and flushes the logger. Cobra skips post-run
// hooks when a command fails, so the caller runs this after Execute.
func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}

	root := &cobra.Command{
		Use:           "subctl",
		Short:         "Manage the substitution database and resolve cover from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			db, err := config.OpenDB(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("cannot establish database connection: %w", err)
			}

			e.cfg, e.db, e.logger = cfg, db, logger
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newResolveCmd(e),
		newTimetableCmd(e),
	)
	return root, e
}
