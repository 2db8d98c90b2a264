package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"rss-analyzer/domain"
)

// Keyword count bounds accepted at validation time. The prompt asks the
// model for 3-7 keywords, but slightly off counts are not worth a resubmit.
const (
	minKeywords = 1
	maxKeywords = 10
)

// analysisRow mirrors one object of the provider's JSON array. Pointer
// fields distinguish a missing field from an empty value; unknown extra
// fields are ignored.
type analysisRow struct {
	TranslatedTitle       *string   `json:"translated_title"`
	TranslatedDescription *string   `json:"translated_description"`
	Keywords              *[]string `json:"keywords"`
	Sentiment             *string   `json:"sentiment"`
	Category              *string   `json:"category"`
}

// ValidateResponse parses raw provider output into exactly one AnalysisResult
// per batch entry, in batch order. Correlation is strictly positional:
// result[i] belongs to batch[i]. Every violation wraps
// domain.ErrMalformedResponse so the orchestrator treats it as retryable.
func ValidateResponse(raw string, batch []*domain.FeedEntry) ([]*domain.AnalysisResult, error) {
	cleaned := stripCodeFence(raw)

	var rows []analysisRow
	if err := json.Unmarshal([]byte(cleaned), &rows); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON array: %v", domain.ErrMalformedResponse, err)
	}

	if len(rows) != len(batch) {
		return nil, fmt.Errorf("%w: expected %d results, got %d", domain.ErrMalformedResponse, len(batch), len(rows))
	}

	results := make([]*domain.AnalysisResult, len(rows))
	for i, row := range rows {
		result, err := validateRow(row, i)
		if err != nil {
			return nil, err
		}
		result.EntryID = batch[i].ID
		results[i] = result
	}

	return results, nil
}

func validateRow(row analysisRow, index int) (*domain.AnalysisResult, error) {
	if row.TranslatedTitle == nil {
		return nil, rowError(index, "missing translated_title")
	}
	if row.TranslatedDescription == nil {
		return nil, rowError(index, "missing translated_description")
	}
	if row.Keywords == nil {
		return nil, rowError(index, "missing keywords")
	}
	if row.Sentiment == nil {
		return nil, rowError(index, "missing sentiment")
	}
	if row.Category == nil {
		return nil, rowError(index, "missing category")
	}

	keywords := *row.Keywords
	if len(keywords) < minKeywords || len(keywords) > maxKeywords {
		return nil, rowError(index, fmt.Sprintf("keyword count %d outside [%d,%d]", len(keywords), minKeywords, maxKeywords))
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return nil, rowError(index, "empty keyword")
		}
	}

	sentiment, ok := domain.NormalizeSentiment(*row.Sentiment)
	if !ok {
		return nil, rowError(index, fmt.Sprintf("invalid sentiment %q", *row.Sentiment))
	}

	category, ok := domain.NormalizeCategory(*row.Category)
	if !ok {
		return nil, rowError(index, fmt.Sprintf("invalid category %q", *row.Category))
	}

	return &domain.AnalysisResult{
		TranslatedTitle:       *row.TranslatedTitle,
		TranslatedDescription: *row.TranslatedDescription,
		Keywords:              keywords,
		Sentiment:             sentiment,
		Category:              category,
	}, nil
}

func rowError(index int, reason string) error {
	return fmt.Errorf("%w: result %d: %s", domain.ErrMalformedResponse, index, reason)
}

// stripCodeFence removes a surrounding markdown code fence. Models regularly
// wrap the JSON array in ```json fences despite instructions not to.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if after, found := strings.CutPrefix(cleaned, "```json"); found {
		cleaned = after
	} else if after, found := strings.CutPrefix(cleaned, "```"); found {
		cleaned = after
	}
	if before, found := strings.CutSuffix(strings.TrimSpace(cleaned), "```"); found {
		cleaned = before
	}

	return strings.TrimSpace(cleaned)
}
