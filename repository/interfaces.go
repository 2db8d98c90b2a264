package repository

import (
	"context"

	"rss-analyzer/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// EntryRepository handles feed entry persistence for the analysis pipeline.
type EntryRepository interface {
	// FetchUnprocessed returns up to limit unprocessed entries with id greater
	// than afterID, in arrival order.
	FetchUnprocessed(ctx context.Context, afterID int64, limit int) ([]*domain.FeedEntry, error)

	// CommitAnalyzedBatch durably writes one result per entry and flips the
	// processed flags as a single atomic unit.
	CommitAnalyzedBatch(ctx context.Context, results []*domain.AnalysisResult, entryIDs []int64) error

	// CountUnprocessed reports the remaining workload.
	CountUnprocessed(ctx context.Context) (int, error)
}

// SourceRepository handles feed sources and ingestion of freshly fetched entries.
type SourceRepository interface {
	GetSources(ctx context.Context) ([]*domain.FeedSource, error)
	ExistingLinks(ctx context.Context, links []string) (map[string]bool, error)
	InsertEntries(ctx context.Context, entries []*domain.FeedEntry) error
}

// AnalysisAPIRepository performs one inference call against the configured provider.
type AnalysisAPIRepository interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}
