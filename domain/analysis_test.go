package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSentiment(t *testing.T) {
	t.Run("should accept canonical values", func(t *testing.T) {
		s, ok := NormalizeSentiment("positive")
		assert.True(t, ok)
		assert.Equal(t, SentimentPositive, s)
	})

	t.Run("should match case-insensitively", func(t *testing.T) {
		s, ok := NormalizeSentiment("  Negative ")
		assert.True(t, ok)
		assert.Equal(t, SentimentNegative, s)
	})

	t.Run("should reject values outside the set", func(t *testing.T) {
		_, ok := NormalizeSentiment("mixed")
		assert.False(t, ok)
	})
}

func TestNormalizeCategory(t *testing.T) {
	t.Run("should normalize to canonical casing", func(t *testing.T) {
		c, ok := NormalizeCategory("TECHNOLOGY")
		assert.True(t, ok)
		assert.Equal(t, Category("Technology"), c)
	})

	t.Run("should reject unknown categories", func(t *testing.T) {
		_, ok := NormalizeCategory("astrology")
		assert.False(t, ok)
	})

	t.Run("should expose exactly fourteen categories", func(t *testing.T) {
		assert.Len(t, Categories, 14)
	})
}

func TestEntryIDs(t *testing.T) {
	t.Run("should preserve fetch order", func(t *testing.T) {
		batch := []*FeedEntry{{ID: 3}, {ID: 1}, {ID: 7}}
		assert.Equal(t, []int64{3, 1, 7}, EntryIDs(batch))
	})
}
