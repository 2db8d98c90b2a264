package domain

import "strings"

// Sentiment is the three-value tone classification of an entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Category is one of the fixed set of news categories the model may assign.
type Category string

// Categories is the canonical category set. Responses are matched
// case-insensitively and normalized to this casing.
var Categories = []Category{
	"Politics",
	"Business",
	"Technology",
	"Science",
	"Health",
	"Sports",
	"Entertainment",
	"World",
	"Environment",
	"Education",
	"Crime",
	"Culture",
	"Lifestyle",
	"Other",
}

// AnalysisResult holds the AI-derived metadata for exactly one feed entry.
// Immutable once written; re-analysis is not supported.
type AnalysisResult struct {
	EntryID               int64
	TranslatedTitle       string
	TranslatedDescription string
	Keywords              []string
	Sentiment             Sentiment
	Category              Category
}

// NormalizeSentiment matches a raw sentiment value case-insensitively against
// the allowed set.
func NormalizeSentiment(raw string) (Sentiment, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SentimentPositive):
		return SentimentPositive, true
	case string(SentimentNeutral):
		return SentimentNeutral, true
	case string(SentimentNegative):
		return SentimentNegative, true
	}
	return "", false
}

// NormalizeCategory matches a raw category value case-insensitively against
// the canonical set and returns the canonical casing.
func NormalizeCategory(raw string) (Category, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(trimmed, string(c)) {
			return c, true
		}
	}
	return "", false
}
