package content

import (
	"slices"
	"strings"

	"github.com/sha1n/sitesearch/internal/domain"
)

// Collection is the full, read-only set of content items of a site,
// ordered by input path.
type Collection struct {
	items []domain.ContentItem
}

// NewCollection creates a collection from the given items.
func NewCollection(items []domain.ContentItem) *Collection {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.ContentItem) int {
		return strings.Compare(a.InputPath, b.InputPath)
	})
	return &Collection{items: sorted}
}

// All returns every item in the collection.
func (c *Collection) All() []domain.ContentItem {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// FilteredByGlob returns the items whose input path matches pattern.
func (c *Collection) FilteredByGlob(pattern string) []domain.ContentItem {
	var out []domain.ContentItem
	for _, item := range c.items {
		if MatchGlob(pattern, item.InputPath) {
			out = append(out, item)
		}
	}
	return out
}
