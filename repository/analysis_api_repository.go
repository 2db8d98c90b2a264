package repository

import (
	"context"
	"log/slog"
	"time"

	"rss-analyzer/driver"
)

// AnalysisAPIRepository implementation backed by a configured provider.
type analysisAPIRepository struct {
	provider driver.AnalysisProvider
	logger   *slog.Logger
}

// NewAnalysisAPIRepository creates a repository around the selected provider.
func NewAnalysisAPIRepository(provider driver.AnalysisProvider, logger *slog.Logger) AnalysisAPIRepository {
	return &analysisAPIRepository{
		provider: provider,
		logger:   logger,
	}
}

func (r *analysisAPIRepository) Analyze(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	raw, err := r.provider.Analyze(ctx, prompt)
	if err != nil {
		r.logger.WarnContext(ctx, "inference call failed",
			"provider", r.provider.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", err
	}

	r.logger.InfoContext(ctx, "inference call succeeded",
		"provider", r.provider.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
		"response_bytes", len(raw))

	return raw, nil
}
