package driver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"rss-analyzer/config"
	"rss-analyzer/domain"
)

// AnalysisProvider performs one request/response cycle with an external
// text-analysis service. Implementations are interchangeable and selected by
// configuration, never by the pipeline itself.
type AnalysisProvider interface {
	// Analyze submits the rendered prompt and returns the raw model output.
	// Failures are typed through the domain sentinels so the pipeline can
	// distinguish fatal auth errors from retryable ones.
	Analyze(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in logs.
	Name() string
}

// NewProvider builds the provider named in the configuration.
func NewProvider(cfg config.AnalyzerConfig, logger *slog.Logger) (AnalysisProvider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg, logger), nil
	case "openai":
		return NewOpenAIProvider(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider: %s", cfg.Provider)
	}
}

// classifyStatus maps a provider HTTP status to a typed failure.
// 401/403 are fatal; everything else the pipeline may retry.
func classifyStatus(status int, body string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", domain.ErrAuthFailed, status, truncate(body, 200))
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrProviderRateLimited, status)
	case status >= 500:
		return fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, status, truncate(body, 200))
	default:
		return fmt.Errorf("unexpected provider status %d: %s", status, truncate(body, 200))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
