package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rss-analyzer/driver"
	"rss-analyzer/logger"
	"rss-analyzer/metrics"
	"rss-analyzer/ratelimit"
	"rss-analyzer/repository"
	"rss-analyzer/retry"
	"rss-analyzer/service"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze unprocessed feed entries in batches",
	Long: `Analyze fetches unprocessed feed entries, groups them into batches and
submits each batch to the configured AI provider for translation,
keyword extraction, sentiment and categorization.

A batch that keeps failing is skipped and retried on the next
invocation; only configuration and credential failures abort the run.

Examples:
  rss-analyzer analyze                        # Run with environment config
  BATCH_SIZE=5 rss-analyzer analyze           # Smaller batches
  MAX_RUNTIME=10m rss-analyzer analyze        # Shorter deadline`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Logger

	db, err := driver.Init(ctx, cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	provider, err := driver.NewProvider(cfg.Analyzer, log)
	if err != nil {
		return fmt.Errorf("creating analysis provider: %w", err)
	}

	renderer, err := service.NewPromptRendererFromFile(cfg.Pipeline.PromptFile)
	if err != nil {
		return fmt.Errorf("loading prompt template: %w", err)
	}

	retrier := retry.NewRetrier(retry.Config{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BaseDelay:     cfg.Retry.BaseDelay,
		MaxDelay:      cfg.Retry.MaxDelay,
		BackoffFactor: cfg.Retry.BackoffFactor,
		JitterFactor:  cfg.Retry.JitterFactor,
	}, service.IsRetryableFailure, log)

	pipeline := service.NewPipeline(
		repository.NewEntryRepository(db, cfg.DB.StatementTimeout, log),
		repository.NewAnalysisAPIRepository(provider, log),
		renderer,
		ratelimit.NewGovernor(cfg.Pipeline.RateLimitInterval),
		retrier,
		metrics.NewCollector(),
		service.PipelineConfig{
			BatchSize:  cfg.Pipeline.BatchSize,
			MaxRuntime: cfg.Pipeline.MaxRuntime,
		},
		log,
	)

	if _, err := pipeline.Run(ctx); err != nil {
		return err
	}

	return nil
}
