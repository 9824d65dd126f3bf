package main

import (
	"fmt"

	"carmarket/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	versions, err := postgres.Migrate(cmd.Context(), e.db, e.logger)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

		return nil
	}

	for _, version := range versions {
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", version)
	}

	return nil
}
