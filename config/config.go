// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and documented defaults for scheduled pipeline runs
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates all pipeline configuration blocks. Everything is supplied
// through the environment; there are no CLI flags.
type Config struct {
	DB       DBConfig       `json:"db"`
	Analyzer AnalyzerConfig `json:"analyzer"`
	Pipeline PipelineConfig `json:"pipeline"`
	Retry    RetryConfig    `json:"retry"`
	Fetcher  FetcherConfig  `json:"fetcher"`
}

type DBConfig struct {
	URL              string        `json:"url" env:"DATABASE_URL"`
	StatementTimeout time.Duration `json:"statement_timeout" env:"DB_STATEMENT_TIMEOUT" default:"5s"`
}

type AnalyzerConfig struct {
	Provider string        `json:"provider" env:"ANALYZER_PROVIDER" default:"gemini"`
	Model    string        `json:"model" env:"ANALYZER_MODEL" default:"gemini-2.0-flash"`
	APIKey   string        `json:"-" env:"ANALYZER_API_KEY"`
	APIBase  string        `json:"api_base" env:"ANALYZER_API_BASE"`
	Timeout  time.Duration `json:"timeout" env:"ANALYZER_TIMEOUT" default:"60s"`
}

type PipelineConfig struct {
	BatchSize         int           `json:"batch_size" env:"BATCH_SIZE" default:"10"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" env:"RATE_LIMIT_INTERVAL" default:"4s"`
	MaxRuntime        time.Duration `json:"max_runtime" env:"MAX_RUNTIME" default:"1h"`
	PromptFile        string        `json:"prompt_file" env:"PROMPT_FILE" default:"prompt.txt"`
}

type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" env:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseDelay     time.Duration `json:"base_delay" env:"RETRY_BASE_DELAY" default:"1s"`
	MaxDelay      time.Duration `json:"max_delay" env:"RETRY_MAX_DELAY" default:"30s"`
	BackoffFactor float64       `json:"backoff_factor" env:"RETRY_BACKOFF_FACTOR" default:"2.0"`
	JitterFactor  float64       `json:"jitter_factor" env:"RETRY_JITTER_FACTOR" default:"0.1"`
}

type FetcherConfig struct {
	EntryLimit int           `json:"entry_limit" env:"FETCH_ENTRY_LIMIT" default:"20"`
	Timeout    time.Duration `json:"timeout" env:"FETCH_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment, applies defaults and
// validates the result. A validation failure is fatal for the run.
func Load() (*Config, error) {
	config := &Config{}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	var err error

	config.DB.URL = os.Getenv("DATABASE_URL")
	if config.DB.StatementTimeout, err = envDuration("DB_STATEMENT_TIMEOUT", 5*time.Second); err != nil {
		return err
	}

	config.Analyzer.Provider = envString("ANALYZER_PROVIDER", "gemini")
	config.Analyzer.Model = envString("ANALYZER_MODEL", "gemini-2.0-flash")
	config.Analyzer.APIKey = os.Getenv("ANALYZER_API_KEY")
	config.Analyzer.APIBase = os.Getenv("ANALYZER_API_BASE")
	if config.Analyzer.Timeout, err = envDuration("ANALYZER_TIMEOUT", 60*time.Second); err != nil {
		return err
	}

	if config.Pipeline.BatchSize, err = envInt("BATCH_SIZE", 10); err != nil {
		return err
	}
	if config.Pipeline.RateLimitInterval, err = envDuration("RATE_LIMIT_INTERVAL", 4*time.Second); err != nil {
		return err
	}
	if config.Pipeline.MaxRuntime, err = envDuration("MAX_RUNTIME", time.Hour); err != nil {
		return err
	}
	config.Pipeline.PromptFile = envString("PROMPT_FILE", "prompt.txt")

	if config.Retry.MaxAttempts, err = envInt("RETRY_MAX_ATTEMPTS", 3); err != nil {
		return err
	}
	if config.Retry.BaseDelay, err = envDuration("RETRY_BASE_DELAY", time.Second); err != nil {
		return err
	}
	if config.Retry.MaxDelay, err = envDuration("RETRY_MAX_DELAY", 30*time.Second); err != nil {
		return err
	}
	if config.Retry.BackoffFactor, err = envFloat("RETRY_BACKOFF_FACTOR", 2.0); err != nil {
		return err
	}
	if config.Retry.JitterFactor, err = envFloat("RETRY_JITTER_FACTOR", 0.1); err != nil {
		return err
	}

	if config.Fetcher.EntryLimit, err = envInt("FETCH_ENTRY_LIMIT", 20); err != nil {
		return err
	}
	if config.Fetcher.Timeout, err = envDuration("FETCH_TIMEOUT", 30*time.Second); err != nil {
		return err
	}

	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, v)
	}
	return f, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, v)
	}
	return d, nil
}
