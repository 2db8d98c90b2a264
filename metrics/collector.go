// ABOUTME: This file implements run statistics collection for pipeline invocations
// ABOUTME: Aggregates batch and inference counters reported in the run summary
package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time view of one pipeline run's counters.
type Snapshot struct {
	BatchesSucceeded int           `json:"batches_succeeded"`
	BatchesFailed    int           `json:"batches_failed"`
	EntriesProcessed int           `json:"entries_processed"`
	EntriesSkipped   int           `json:"entries_skipped"`
	InferenceCalls   int           `json:"inference_calls"`
	Retries          int           `json:"retries"`
	SuccessRate      float64       `json:"success_rate"`
	Elapsed          time.Duration `json:"elapsed_ms"`
}

// Collector aggregates counters for a single run. Safe for reuse if a
// caller ever shares it, though the pipeline itself is sequential.
type Collector struct {
	mu sync.Mutex

	startedAt        time.Time
	batchesSucceeded int
	batchesFailed    int
	entriesProcessed int
	entriesSkipped   int
	inferenceCalls   int
	retries          int
}

// NewCollector creates a collector with the run clock started.
func NewCollector() *Collector {
	return &Collector{startedAt: time.Now()}
}

// RecordInferenceCall counts one provider request, regardless of outcome.
func (c *Collector) RecordInferenceCall() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inferenceCalls++
}

// RecordBatchSuccess counts a committed batch; attempts beyond the first
// count as retries.
func (c *Collector) RecordBatchSuccess(entries, attempts int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batchesSucceeded++
	c.entriesProcessed += entries
	if attempts > 1 {
		c.retries += attempts - 1
	}
}

// RecordBatchFailure counts a skipped batch whose entries stay unprocessed.
func (c *Collector) RecordBatchFailure(entries, attempts int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batchesFailed++
	c.entriesSkipped += entries
	if attempts > 1 {
		c.retries += attempts - 1
	}
}

// Snapshot returns the current counters with the derived success rate.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		BatchesSucceeded: c.batchesSucceeded,
		BatchesFailed:    c.batchesFailed,
		EntriesProcessed: c.entriesProcessed,
		EntriesSkipped:   c.entriesSkipped,
		InferenceCalls:   c.inferenceCalls,
		Retries:          c.retries,
		Elapsed:          time.Since(c.startedAt),
	}

	if total := c.batchesSucceeded + c.batchesFailed; total > 0 {
		snapshot.SuccessRate = float64(c.batchesSucceeded) / float64(total)
	}

	return snapshot
}
