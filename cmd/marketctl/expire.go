package main

import (
	"fmt"
	"time"

	"carmarket/internal/infra/metrics"
	"carmarket/internal/infra/persistence/postgres"
	"carmarket/internal/infra/qrcode"
	"carmarket/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var expireAt string

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Expire open requests past their expiresAt, and their submitted offers",
	Long: `expire runs the expiry sweep once. Schedule it from cron or a
Cloud Scheduler job; running it twice is harmless.`,
	Args: cobra.NoArgs,
	RunE: runExpire,
}

func init() {
	expireCmd.Flags().StringVar(&expireAt, "now", "", "RFC 3339 instant to sweep against (default: current time)")
}

func runExpire(cmd *cobra.Command, _ []string) error {
	now := time.Now()
	if expireAt != "" {
		parsed, err := time.Parse(time.RFC3339, expireAt)
		if err != nil {
			return fmt.Errorf("invalid --now %q: %w", expireAt, err)
		}
		now = parsed
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	requests := impl.NewRequestService(
		postgres.NewTransactionManager(e.db),
		postgres.NewBuyerRequestRepository(e.db),
		qrcode.NewQRCodeService(e.cfg),
		metrics.New(e.cfg),
		impl.NewMarketplaceSettings(e.cfg),
		e.logger,
	)

	report, err := requests.ExpireOverdue(cmd.Context(), now)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Expired %d requests and %d offers\n", len(report.RequestIDs), report.OffersExpired)
	for _, id := range report.RequestIDs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id)
	}

	return nil
}
