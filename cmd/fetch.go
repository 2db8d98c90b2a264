package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rss-analyzer/driver"
	"rss-analyzer/logger"
	"rss-analyzer/repository"
	"rss-analyzer/service"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Refresh entries from registered feed sources",
	Long: `Fetch polls every feed source registered in the database and stores any
entries it has not seen before. New entries arrive unprocessed, which
queues them for the next analyze run.

Examples:
  rss-analyzer fetch                          # Poll all registered feeds
  FETCH_ENTRY_LIMIT=50 rss-analyzer fetch     # Keep more entries per feed`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Logger

	db, err := driver.Init(ctx, cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	fetcher := service.NewFeedFetcher(
		repository.NewSourceRepository(db, cfg.DB.StatementTimeout, log),
		cfg.Fetcher.Timeout,
		cfg.Fetcher.EntryLimit,
		log,
	)

	if _, err := fetcher.RefreshAll(ctx); err != nil {
		return fmt.Errorf("refreshing feeds: %w", err)
	}

	return nil
}
