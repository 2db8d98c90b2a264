package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	t.Run("empty collector snapshots to zero values", func(t *testing.T) {
		c := NewCollector()

		s := c.Snapshot()

		assert.Zero(t, s.BatchesSucceeded)
		assert.Zero(t, s.BatchesFailed)
		assert.Zero(t, s.InferenceCalls)
		assert.Zero(t, s.SuccessRate)
	})

	t.Run("aggregates batch outcomes and retries", func(t *testing.T) {
		c := NewCollector()

		c.RecordInferenceCall()
		c.RecordBatchSuccess(10, 1)
		c.RecordInferenceCall()
		c.RecordInferenceCall()
		c.RecordInferenceCall()
		c.RecordBatchFailure(7, 3)

		s := c.Snapshot()

		assert.Equal(t, 1, s.BatchesSucceeded)
		assert.Equal(t, 1, s.BatchesFailed)
		assert.Equal(t, 10, s.EntriesProcessed)
		assert.Equal(t, 7, s.EntriesSkipped)
		assert.Equal(t, 4, s.InferenceCalls)
		assert.Equal(t, 2, s.Retries)
		assert.InDelta(t, 0.5, s.SuccessRate, 0.0001)
	})
}
