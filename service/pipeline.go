package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rss-analyzer/domain"
	"rss-analyzer/metrics"
	"rss-analyzer/ratelimit"
	"rss-analyzer/repository"
	"rss-analyzer/retry"

	"github.com/google/uuid"
)

// PipelineConfig bounds one pipeline run.
type PipelineConfig struct {
	BatchSize  int
	MaxRuntime time.Duration
}

// Pipeline drives the batch analysis loop: fetch, render, throttle, call,
// validate, commit — strictly sequential, one batch at a time, under a
// wall-clock deadline.
type Pipeline struct {
	entries  repository.EntryRepository
	api      repository.AnalysisAPIRepository
	renderer *PromptRenderer
	governor *ratelimit.Governor
	retrier  *retry.Retrier
	stats    *metrics.Collector
	config   PipelineConfig
	logger   *slog.Logger

	now func() time.Time
}

// NewPipeline wires the orchestrator. The governor and retrier are owned by
// the run that owns the pipeline; nothing here is process-global.
func NewPipeline(
	entries repository.EntryRepository,
	api repository.AnalysisAPIRepository,
	renderer *PromptRenderer,
	governor *ratelimit.Governor,
	retrier *retry.Retrier,
	stats *metrics.Collector,
	config PipelineConfig,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		entries:  entries,
		api:      api,
		renderer: renderer,
		governor: governor,
		retrier:  retrier,
		stats:    stats,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// Run processes unprocessed entries until the store is drained or the
// deadline passes. Reaching the deadline is normal termination: the next
// scheduled invocation resumes where this one stopped. The returned error is
// non-nil only for fatal failures (provider auth); skipped batches are logged
// and left for the next run.
func (p *Pipeline) Run(ctx context.Context) (metrics.Snapshot, error) {
	runID := uuid.NewString()
	start := p.now()
	logger := p.logger.With("run_id", runID)

	backlog, err := p.entries.CountUnprocessed(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to count unprocessed entries", "error", err)
		backlog = -1
	}

	logger.InfoContext(ctx, "starting analysis run",
		"batch_size", p.config.BatchSize,
		"max_runtime", p.config.MaxRuntime,
		"unprocessed_entries", backlog)

	// Keyset cursor: advances past every fetched batch, succeeded or failed,
	// so a batch that keeps failing cannot starve the rest of the run.
	// Failed entries stay unprocessed and are retried on the next invocation.
	var cursor int64

	for {
		if elapsed := p.now().Sub(start); elapsed >= p.config.MaxRuntime {
			logger.InfoContext(ctx, "run deadline reached", "elapsed", elapsed)
			break
		}

		batch, err := p.entries.FetchUnprocessed(ctx, cursor, p.config.BatchSize)
		if err != nil {
			// The store went away mid-run. Stop here; the entries are still
			// unprocessed and the next scheduled run picks them up.
			logger.ErrorContext(ctx, "failed to fetch batch, ending run", "error", err)
			break
		}

		if len(batch) == 0 {
			logger.InfoContext(ctx, "no more entries to process")
			break
		}

		cursor = batch[len(batch)-1].ID

		if err := p.processBatch(ctx, logger, batch); err != nil {
			snapshot := p.stats.Snapshot()
			logger.ErrorContext(ctx, "aborting run", "error", err)
			return snapshot, err
		}
	}

	snapshot := p.stats.Snapshot()
	logger.InfoContext(ctx, "analysis run finished",
		"batches_succeeded", snapshot.BatchesSucceeded,
		"batches_failed", snapshot.BatchesFailed,
		"entries_processed", snapshot.EntriesProcessed,
		"entries_skipped", snapshot.EntriesSkipped,
		"inference_calls", snapshot.InferenceCalls,
		"elapsed", snapshot.Elapsed)

	return snapshot, nil
}

// processBatch runs one batch to completion, retries included; the deadline
// is only checked between batches. It returns an error only for fatal
// failures — a skipped batch is not an error for the run.
func (p *Pipeline) processBatch(ctx context.Context, logger *slog.Logger, batch []*domain.FeedEntry) error {
	batchID := uuid.NewString()
	entryIDs := domain.EntryIDs(batch)
	logger = logger.With("batch_id", batchID)

	logger.InfoContext(ctx, "processing batch", "entry_ids", entryIDs)

	prompt := p.renderer.Render(batch)

	var results []*domain.AnalysisResult
	attempts := 0

	operation := func() error {
		attempts++
		p.governor.Wait()
		p.stats.RecordInferenceCall()

		raw, err := p.api.Analyze(ctx, prompt)
		if err != nil {
			return err
		}

		validated, err := ValidateResponse(raw, batch)
		if err != nil {
			return err
		}

		results = validated
		return nil
	}

	if err := p.retrier.Do(ctx, operation); err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			p.stats.RecordBatchFailure(len(batch), attempts)
			return fmt.Errorf("provider rejected credentials: %w", err)
		}

		logger.WarnContext(ctx, "batch failed, leaving entries unprocessed",
			"entry_ids", entryIDs,
			"attempts", attempts,
			"error", err)
		p.stats.RecordBatchFailure(len(batch), attempts)
		return nil
	}

	if err := p.entries.CommitAnalyzedBatch(ctx, results, entryIDs); err != nil {
		// Never mark processed without a result: a failed commit degrades to
		// a skipped batch, exactly like exhausted retries.
		logger.WarnContext(ctx, "batch commit failed, leaving entries unprocessed",
			"entry_ids", entryIDs,
			"error", err)
		p.stats.RecordBatchFailure(len(batch), attempts)
		return nil
	}

	logger.InfoContext(ctx, "batch committed",
		"entries", len(batch),
		"attempts", attempts)
	p.stats.RecordBatchSuccess(len(batch), attempts)

	return nil
}
