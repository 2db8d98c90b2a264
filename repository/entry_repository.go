package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rss-analyzer/domain"
	"rss-analyzer/driver"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryRepository implementation.
type entryRepository struct {
	db          *pgxpool.Pool
	stmtTimeout time.Duration
	logger      *slog.Logger
}

// NewEntryRepository creates a new entry repository.
func NewEntryRepository(db *pgxpool.Pool, stmtTimeout time.Duration, logger *slog.Logger) EntryRepository {
	return &entryRepository{
		db:          db,
		stmtTimeout: stmtTimeout,
		logger:      logger,
	}
}

func (r *entryRepository) FetchUnprocessed(ctx context.Context, afterID int64, limit int) ([]*domain.FeedEntry, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to fetch unprocessed entries: database connection is nil")
	}

	entries, err := driver.FetchUnprocessedEntries(ctx, r.db, afterID, limit, r.stmtTimeout)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch unprocessed entries", "error", err, "after_id", afterID)
		return nil, err
	}

	r.logger.InfoContext(ctx, "fetched unprocessed entries", "count", len(entries), "after_id", afterID)

	return entries, nil
}

func (r *entryRepository) CommitAnalyzedBatch(ctx context.Context, results []*domain.AnalysisResult, entryIDs []int64) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to commit batch: database connection is nil")
	}

	if err := driver.CommitAnalyzedBatch(ctx, r.db, results, entryIDs, r.stmtTimeout); err != nil {
		r.logger.ErrorContext(ctx, "failed to commit analyzed batch", "error", err, "entry_ids", entryIDs)
		return err
	}

	r.logger.InfoContext(ctx, "committed analyzed batch", "count", len(results))

	return nil
}

func (r *entryRepository) CountUnprocessed(ctx context.Context) (int, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return 0, fmt.Errorf("failed to count unprocessed entries: database connection is nil")
	}

	return driver.CountUnprocessedEntries(ctx, r.db, r.stmtTimeout)
}
