package service

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"rss-analyzer/domain"
	"rss-analyzer/repository"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// FetchResult summarizes one feed refresh pass.
type FetchResult struct {
	SourcesPolled int
	SourcesFailed int
	EntriesAdded  int
}

// FeedFetcher refreshes the entry store from the registered feed sources.
// New entries arrive unprocessed, which is what queues them for analysis.
type FeedFetcher struct {
	sources   repository.SourceRepository
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	limit     int
	logger    *slog.Logger
}

// NewFeedFetcher creates a fetcher keeping at most limit newest entries per
// feed per pass.
func NewFeedFetcher(sources repository.SourceRepository, timeout time.Duration, limit int, logger *slog.Logger) *FeedFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = "rss-analyzer/1.0"
	parser.Client = &http.Client{Timeout: timeout}

	return &FeedFetcher{
		sources:   sources,
		parser:    parser,
		sanitizer: bluemonday.StrictPolicy(),
		limit:     limit,
		logger:    logger,
	}
}

// RefreshAll polls every registered source. A failing source is logged and
// skipped; only a store failure aborts the pass.
func (f *FeedFetcher) RefreshAll(ctx context.Context) (*FetchResult, error) {
	sources, err := f.sources.GetSources(ctx)
	if err != nil {
		return nil, err
	}

	result := &FetchResult{}

	for _, source := range sources {
		result.SourcesPolled++

		added, err := f.refreshSource(ctx, source)
		if err != nil {
			f.logger.ErrorContext(ctx, "failed to refresh feed source",
				"feed_id", source.ID,
				"url", source.URL,
				"error", err)
			result.SourcesFailed++
			continue
		}

		result.EntriesAdded += added
	}

	f.logger.InfoContext(ctx, "feed refresh finished",
		"sources_polled", result.SourcesPolled,
		"sources_failed", result.SourcesFailed,
		"entries_added", result.EntriesAdded)

	return result, nil
}

func (f *FeedFetcher) refreshSource(ctx context.Context, source *domain.FeedSource) (int, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return 0, err
	}

	candidates := f.newestItems(feed.Items)
	if len(candidates) == 0 {
		return 0, nil
	}

	links := make([]string, 0, len(candidates))
	for _, item := range candidates {
		links = append(links, item.Link)
	}

	existing, err := f.sources.ExistingLinks(ctx, links)
	if err != nil {
		return 0, err
	}

	var entries []*domain.FeedEntry
	for _, item := range candidates {
		if existing[item.Link] {
			continue
		}
		entries = append(entries, f.toEntry(item, source.ID))
	}

	if len(entries) == 0 {
		return 0, nil
	}

	if err := f.sources.InsertEntries(ctx, entries); err != nil {
		return 0, err
	}

	return len(entries), nil
}

// newestItems sorts by published date descending and cuts to the per-feed
// limit, skipping items without a link.
func (f *FeedFetcher) newestItems(items []*gofeed.Item) []*gofeed.Item {
	kept := make([]*gofeed.Item, 0, len(items))
	for _, item := range items {
		if item != nil && item.Link != "" {
			kept = append(kept, item)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return publishedAt(kept[i]).After(publishedAt(kept[j]))
	})

	if len(kept) > f.limit {
		kept = kept[:f.limit]
	}

	return kept
}

func (f *FeedFetcher) toEntry(item *gofeed.Item, feedID int64) *domain.FeedEntry {
	return &domain.FeedEntry{
		Title:       strings.TrimSpace(item.Title),
		Link:        item.Link,
		Description: f.stripHTML(item.Description),
		Published:   publishedAt(item),
		FeedID:      feedID,
	}
}

// stripHTML removes markup from a feed description so the analysis prompt
// receives plain text.
func (f *FeedFetcher) stripHTML(raw string) string {
	return strings.TrimSpace(html.UnescapeString(f.sanitizer.Sanitize(raw)))
}

func publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}
