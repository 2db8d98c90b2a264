package domain

import "time"

// FeedSource is one RSS feed registered for polling.
type FeedSource struct {
	ID  int64
	URL string
}

// FeedEntry is a single feed item awaiting or having received analysis.
// The processed flag only ever moves from false to true, and only together
// with a durably written AnalysisResult.
type FeedEntry struct {
	ID          int64
	Title       string
	Link        string
	Description string
	Published   time.Time
	FeedID      int64
	Processed   bool
}

// EntryIDs returns the ids of a batch in fetch order.
func EntryIDs(entries []*FeedEntry) []int64 {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
