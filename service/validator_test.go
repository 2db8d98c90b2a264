package service

import (
	"fmt"
	"testing"

	"rss-analyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBatch(n int) []*domain.FeedEntry {
	batch := make([]*domain.FeedEntry, n)
	for i := range batch {
		batch[i] = &domain.FeedEntry{
			ID:    int64(100 + i),
			Title: fmt.Sprintf("Entry %d", i+1),
		}
	}
	return batch
}

func validRow(title string) string {
	return fmt.Sprintf(`{
		"translated_title": %q,
		"translated_description": "a description",
		"keywords": ["economy", "markets", "trade"],
		"sentiment": "neutral",
		"category": "Business"
	}`, title)
}

func TestValidateResponse_Success(t *testing.T) {
	t.Run("should map results to entries positionally", func(t *testing.T) {
		batch := testBatch(3)
		raw := fmt.Sprintf("[%s,%s,%s]", validRow("first"), validRow("second"), validRow("third"))

		results, err := ValidateResponse(raw, batch)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, int64(100), results[0].EntryID)
		assert.Equal(t, int64(101), results[1].EntryID)
		assert.Equal(t, int64(102), results[2].EntryID)
		assert.Equal(t, "first", results[0].TranslatedTitle)
		assert.Equal(t, "second", results[1].TranslatedTitle)
		assert.Equal(t, "third", results[2].TranslatedTitle)
	})

	t.Run("should strip a markdown code fence", func(t *testing.T) {
		batch := testBatch(1)
		raw := "```json\n[" + validRow("fenced") + "]\n```"

		results, err := ValidateResponse(raw, batch)

		require.NoError(t, err)
		assert.Equal(t, "fenced", results[0].TranslatedTitle)
	})

	t.Run("should normalize enum casing", func(t *testing.T) {
		batch := testBatch(1)
		raw := `[{
			"translated_title": "t",
			"translated_description": "d",
			"keywords": ["one"],
			"sentiment": "POSITIVE",
			"category": "technology"
		}]`

		results, err := ValidateResponse(raw, batch)

		require.NoError(t, err)
		assert.Equal(t, domain.SentimentPositive, results[0].Sentiment)
		assert.Equal(t, domain.Category("Technology"), results[0].Category)
	})

	t.Run("should ignore extra fields", func(t *testing.T) {
		batch := testBatch(1)
		raw := `[{
			"translated_title": "t",
			"translated_description": "d",
			"keywords": ["one", "two"],
			"sentiment": "negative",
			"category": "World",
			"confidence": 0.93
		}]`

		_, err := ValidateResponse(raw, batch)

		assert.NoError(t, err)
	})
}

func TestValidateResponse_Malformed(t *testing.T) {
	tests := map[string]struct {
		batchSize int
		raw       string
	}{
		"count mismatch rejects nine results for ten entries": {
			batchSize: 10,
			raw: func() string {
				out := "["
				for i := 0; i < 9; i++ {
					if i > 0 {
						out += ","
					}
					out += validRow("r")
				}
				return out + "]"
			}(),
		},
		"sentiment outside the enumeration": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"keywords": ["one"],
				"sentiment": "mixed",
				"category": "Business"
			}]`,
		},
		"missing category field": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"keywords": ["one"],
				"sentiment": "neutral"
			}]`,
		},
		"missing keywords field": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"sentiment": "neutral",
				"category": "Business"
			}]`,
		},
		"empty keyword list": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"keywords": [],
				"sentiment": "neutral",
				"category": "Business"
			}]`,
		},
		"non-string keyword entries": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"keywords": [1, 2, 3],
				"sentiment": "neutral",
				"category": "Business"
			}]`,
		},
		"unknown category": {
			batchSize: 1,
			raw: `[{
				"translated_title": "t",
				"translated_description": "d",
				"keywords": ["one"],
				"sentiment": "neutral",
				"category": "Gossip"
			}]`,
		},
		"top level is not an array": {
			batchSize: 1,
			raw:       `{"results": []}`,
		},
		"not JSON at all": {
			batchSize: 1,
			raw:       "I could not process these entries.",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateResponse(tc.raw, testBatch(tc.batchSize))

			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestValidateResponse_KeywordBounds(t *testing.T) {
	t.Run("accepts up to ten keywords", func(t *testing.T) {
		raw := `[{
			"translated_title": "t",
			"translated_description": "d",
			"keywords": ["a","b","c","d","e","f","g","h","i","j"],
			"sentiment": "neutral",
			"category": "Science"
		}]`

		_, err := ValidateResponse(raw, testBatch(1))
		assert.NoError(t, err)
	})

	t.Run("rejects eleven keywords", func(t *testing.T) {
		raw := `[{
			"translated_title": "t",
			"translated_description": "d",
			"keywords": ["a","b","c","d","e","f","g","h","i","j","k"],
			"sentiment": "neutral",
			"category": "Science"
		}]`

		_, err := ValidateResponse(raw, testBatch(1))
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})
}
