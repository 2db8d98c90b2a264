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

// SourceRepository implementation.
type sourceRepository struct {
	db          *pgxpool.Pool
	stmtTimeout time.Duration
	logger      *slog.Logger
}

// NewSourceRepository creates a new feed source repository.
func NewSourceRepository(db *pgxpool.Pool, stmtTimeout time.Duration, logger *slog.Logger) SourceRepository {
	return &sourceRepository{
		db:          db,
		stmtTimeout: stmtTimeout,
		logger:      logger,
	}
}

func (r *sourceRepository) GetSources(ctx context.Context) ([]*domain.FeedSource, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get feed sources: database connection is nil")
	}

	sources, err := driver.GetFeedSources(ctx, r.db, r.stmtTimeout)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to get feed sources", "error", err)
		return nil, err
	}

	return sources, nil
}

func (r *sourceRepository) ExistingLinks(ctx context.Context, links []string) (map[string]bool, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to check existing links: database connection is nil")
	}

	return driver.ExistingEntryLinks(ctx, r.db, links, r.stmtTimeout)
}

func (r *sourceRepository) InsertEntries(ctx context.Context, entries []*domain.FeedEntry) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to insert entries: database connection is nil")
	}

	if err := driver.InsertEntries(ctx, r.db, entries, r.stmtTimeout); err != nil {
		r.logger.ErrorContext(ctx, "failed to insert entries", "error", err, "count", len(entries))
		return err
	}

	r.logger.InfoContext(ctx, "inserted feed entries", "count", len(entries))

	return nil
}
