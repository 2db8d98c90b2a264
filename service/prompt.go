package service

import (
	"fmt"
	"os"
	"strings"

	"rss-analyzer/domain"
)

// entriesPlaceholder is the single substitution point the template must carry.
const entriesPlaceholder = "{entries}"

// PromptRenderer deterministically serializes a batch of entries into the
// inference request payload using an externally supplied template.
type PromptRenderer struct {
	template string
}

// NewPromptRenderer validates that the template contains the entry
// substitution point.
func NewPromptRenderer(template string) (*PromptRenderer, error) {
	if !strings.Contains(template, entriesPlaceholder) {
		return nil, domain.ErrMissingPlaceholder
	}
	return &PromptRenderer{template: template}, nil
}

// NewPromptRendererFromFile loads the template from disk. A missing or
// malformed template is a startup failure, caught before any batch runs.
func NewPromptRendererFromFile(path string) (*PromptRenderer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	return NewPromptRenderer(string(raw))
}

// Render substitutes the serialized entry list into the template. Pure and
// deterministic; the numbered layout matches what the output-format
// instructions in the template describe.
func (r *PromptRenderer) Render(entries []*domain.FeedEntry) string {
	var b strings.Builder

	for i, entry := range entries {
		title := entry.Title
		if title == "" {
			title = "Untitled"
		}
		description := entry.Description
		if description == "" {
			description = "No description"
		}

		fmt.Fprintf(&b, "Entry %d:\n- Title: %s\n- Description: %s\n\n", i+1, title, description)
	}

	return strings.Replace(r.template, entriesPlaceholder, b.String(), 1)
}
