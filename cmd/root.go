// Package cmd contains all CLI commands for rss-analyzer
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rss-analyzer/config"
	"rss-analyzer/logger"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rss-analyzer",
	Short: "RSS entry analysis pipeline",
	Long: `rss-analyzer polls registered RSS feeds and runs their entries through
an AI analysis provider in rate-limited batches.

Runs are designed for schedulers: each invocation is bounded by a
wall-clock deadline and resumes where the previous one stopped.

Example usage:
  rss-analyzer fetch             # Refresh entries from registered feeds
  rss-analyzer analyze           # Analyze unprocessed entries in batches`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// initConfig sets up logging and loads the environment configuration. A
// configuration failure here is fatal for any subcommand.
func initConfig() error {
	logger.Init()

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return nil
}
