package config

import "fmt"

// Providers that the analyzer driver can construct.
var supportedProviders = map[string]bool{
	"gemini": true,
	"openai": true,
}

func validateConfig(config *Config) error {
	if config.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if config.DB.StatementTimeout <= 0 {
		return fmt.Errorf("statement timeout must be positive: %v", config.DB.StatementTimeout)
	}

	if !supportedProviders[config.Analyzer.Provider] {
		return fmt.Errorf("unsupported provider: %s", config.Analyzer.Provider)
	}

	if config.Analyzer.APIKey == "" {
		return fmt.Errorf("ANALYZER_API_KEY is required for provider %s", config.Analyzer.Provider)
	}

	if config.Analyzer.Model == "" {
		return fmt.Errorf("analyzer model cannot be empty")
	}

	if config.Analyzer.Timeout <= 0 {
		return fmt.Errorf("analyzer timeout must be positive: %v", config.Analyzer.Timeout)
	}

	if config.Pipeline.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive: %d", config.Pipeline.BatchSize)
	}

	if config.Pipeline.RateLimitInterval < 0 {
		return fmt.Errorf("rate limit interval must be non-negative: %v", config.Pipeline.RateLimitInterval)
	}

	if config.Pipeline.MaxRuntime <= 0 {
		return fmt.Errorf("max runtime must be positive: %v", config.Pipeline.MaxRuntime)
	}

	if config.Pipeline.PromptFile == "" {
		return fmt.Errorf("prompt file cannot be empty")
	}

	if config.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive: %d", config.Retry.MaxAttempts)
	}

	if config.Retry.BackoffFactor <= 1.0 {
		return fmt.Errorf("backoff factor must be greater than 1.0: %f", config.Retry.BackoffFactor)
	}

	if config.Fetcher.EntryLimit <= 0 {
		return fmt.Errorf("fetch entry limit must be positive: %d", config.Fetcher.EntryLimit)
	}

	if config.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive: %v", config.Fetcher.Timeout)
	}

	return nil
}
