package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rss-analyzer/domain"
	"rss-analyzer/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FetchUnprocessedEntries returns up to limit unprocessed entries with
// id greater than afterID, in arrival (id) order. The cursor lets the
// pipeline advance past a batch that keeps failing instead of refetching it.
func FetchUnprocessedEntries(ctx context.Context, db *pgxpool.Pool, afterID int64, limit int, stmtTimeout time.Duration) ([]*domain.FeedEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	query := `
		SELECT id, COALESCE(title, ''), COALESCE(link, ''), COALESCE(description, ''), published, feed_id
		FROM rss_feed_entries
		WHERE processed = FALSE AND id > $1
		ORDER BY id ASC
		LIMIT $2
	`

	rows, err := db.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FeedEntry
	for rows.Next() {
		var entry domain.FeedEntry
		var published *time.Time

		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Link, &entry.Description, &published, &entry.FeedID); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if published != nil {
			entry.Published = *published
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// CountUnprocessedEntries reports how much work is pending for this run.
func CountUnprocessedEntries(ctx context.Context, db *pgxpool.Pool, stmtTimeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	var count int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM rss_feed_entries WHERE processed = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unprocessed entries: %w", err)
	}

	return count, nil
}

// CommitAnalyzedBatch writes every result of a batch and flips the processed
// flag of every entry in the same transaction. Either the whole batch becomes
// durable or none of it does; an entry is never marked processed without its
// result row.
func CommitAnalyzedBatch(ctx context.Context, db *pgxpool.Pool, results []*domain.AnalysisResult, entryIDs []int64, stmtTimeout time.Duration) error {
	if len(results) != len(entryIDs) {
		return fmt.Errorf("result count %d does not match entry count %d", len(results), len(entryIDs))
	}
	if len(results) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			logger.Logger.ErrorContext(ctx, "Failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// statement_timeout cannot be bound as a parameter; milliseconds only.
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", stmtTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set statement timeout: %w", err)
	}

	query := `
		INSERT INTO rss_feed_analysed
		(entry_id, translated_title, translated_description, keywords, sentiment, category)
		VALUES `

	values := make([]interface{}, 0, len(results)*6)
	placeholders := make([]string, 0, len(results))

	for i, result := range results {
		placeholder := fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6,
		)
		placeholders = append(placeholders, placeholder)

		keywords, err := json.Marshal(result.Keywords)
		if err != nil {
			return fmt.Errorf("failed to marshal keywords for entry %d: %w", result.EntryID, err)
		}

		values = append(values,
			result.EntryID,
			result.TranslatedTitle,
			result.TranslatedDescription,
			string(keywords),
			string(result.Sentiment),
			string(result.Category),
		)
	}

	query += strings.Join(placeholders, ", ")

	if _, err := tx.Exec(ctx, query, values...); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to insert analysis results", "error", err)
		return fmt.Errorf("failed to insert analysis results: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE rss_feed_entries SET processed = TRUE WHERE id = ANY($1)`, entryIDs)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to mark entries processed", "error", err)
		return fmt.Errorf("failed to mark entries processed: %w", err)
	}
	if int(tag.RowsAffected()) != len(entryIDs) {
		return fmt.Errorf("expected to mark %d entries processed, marked %d", len(entryIDs), tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// GetFeedSources returns every registered feed for the refresh command.
func GetFeedSources(ctx context.Context, db *pgxpool.Pool, stmtTimeout time.Duration) ([]*domain.FeedSource, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	rows, err := db.Query(ctx, `SELECT id, url FROM rss_feed_sources ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed sources: %w", err)
	}
	defer rows.Close()

	var sources []*domain.FeedSource
	for rows.Next() {
		var source domain.FeedSource
		if err := rows.Scan(&source.ID, &source.URL); err != nil {
			return nil, fmt.Errorf("failed to scan feed source: %w", err)
		}
		sources = append(sources, &source)
	}

	return sources, rows.Err()
}

// ExistingEntryLinks reports which of the given links are already stored.
func ExistingEntryLinks(ctx context.Context, db *pgxpool.Pool, links []string, stmtTimeout time.Duration) (map[string]bool, error) {
	existing := make(map[string]bool, len(links))
	if len(links) == 0 {
		return existing, nil
	}

	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	rows, err := db.Query(ctx, `SELECT link FROM rss_feed_entries WHERE link = ANY($1)`, links)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		existing[link] = true
	}

	return existing, rows.Err()
}

// InsertEntries stores newly fetched entries in a single transaction.
// New entries arrive with processed = FALSE so the next analysis run
// picks them up.
func InsertEntries(ctx context.Context, db *pgxpool.Pool, entries []*domain.FeedEntry, stmtTimeout time.Duration) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			logger.Logger.ErrorContext(ctx, "Failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", stmtTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set statement timeout: %w", err)
	}

	query := `
		INSERT INTO rss_feed_entries (title, link, description, published, feed_id, processed)
		VALUES `

	values := make([]interface{}, 0, len(entries)*6)
	placeholders := make([]string, 0, len(entries))

	for i, entry := range entries {
		placeholder := fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6,
		)
		placeholders = append(placeholders, placeholder)
		values = append(values,
			entry.Title,
			entry.Link,
			entry.Description,
			entry.Published,
			entry.FeedID,
			false,
		)
	}

	query += strings.Join(placeholders, ", ")
	query += ` ON CONFLICT (link) DO NOTHING`

	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to insert entries: %w", err)
	}

	return tx.Commit(ctx)
}
