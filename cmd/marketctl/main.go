// Command marketctl runs one-off operator tasks against the marketplace database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"carmarket/config"
	logs "carmarket/internal/infra/log"
	"carmarket/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "marketctl",
	Short: "Operator tasks for the car marketplace",
	Long: `marketctl applies schema migrations, runs the request expiry sweep
and mints development identity tokens.

It reads the same config.yaml as the API; --config overrides CONFIG_PATH.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configDir != "" {
			return errors.WithStack(os.Setenv("CONFIG_PATH", configDir))
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(expireCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: config, a logger and an open database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	sqlDB, err := e.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		e.logger.Warn("Failed to close database", slog.Any("error", err))
	}
}
