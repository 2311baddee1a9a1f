package content

import (
	"time"

	"github.com/sha1n/sitesearch/internal/domain"
)

// LivePredicate returns a predicate admitting items that are published as of now.
// Drafts are rejected unless includeDrafts is set. Items dated in the future are
// rejected; undated items are live.
func LivePredicate(now time.Time, includeDrafts bool) func(domain.ContentItem) bool {
	return func(item domain.ContentItem) bool {
		if item.Data.Draft && !includeDrafts {
			return false
		}
		return item.Data.Date.IsZero() || !item.Data.Date.After(now)
	}
}
