package repository

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"rss-analyzer/domain"

	"github.com/stretchr/testify/assert"
)

func testLoggerRepo() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

func TestEntryRepository_InterfaceCompliance(t *testing.T) {
	t.Run("should implement EntryRepository interface", func(t *testing.T) {
		repo := NewEntryRepository(nil, 5*time.Second, testLoggerRepo())

		var _ EntryRepository = repo
		assert.NotNil(t, repo)
	})
}

func TestEntryRepository_NilDatabase(t *testing.T) {
	repo := NewEntryRepository(nil, 5*time.Second, testLoggerRepo())

	t.Run("FetchUnprocessed should fail gracefully", func(t *testing.T) {
		entries, err := repo.FetchUnprocessed(context.Background(), 0, 10)

		assert.Error(t, err)
		assert.Nil(t, entries)
	})

	t.Run("CommitAnalyzedBatch should fail gracefully", func(t *testing.T) {
		err := repo.CommitAnalyzedBatch(context.Background(), []*domain.AnalysisResult{{EntryID: 1}}, []int64{1})

		assert.Error(t, err)
	})

	t.Run("CountUnprocessed should fail gracefully", func(t *testing.T) {
		count, err := repo.CountUnprocessed(context.Background())

		assert.Error(t, err)
		assert.Zero(t, count)
	})
}

func TestSourceRepository_NilDatabase(t *testing.T) {
	repo := NewSourceRepository(nil, 5*time.Second, testLoggerRepo())

	t.Run("GetSources should fail gracefully", func(t *testing.T) {
		sources, err := repo.GetSources(context.Background())

		assert.Error(t, err)
		assert.Nil(t, sources)
	})

	t.Run("InsertEntries should fail gracefully", func(t *testing.T) {
		err := repo.InsertEntries(context.Background(), []*domain.FeedEntry{{ID: 1}})

		assert.Error(t, err)
	})
}
