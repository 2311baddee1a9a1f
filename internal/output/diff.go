package output

import (
	"slices"

	"github.com/sha1n/sitesearch/internal/domain"
)

// Changes summarizes how a record list differs from a previous one, keyed by ObjectID.
type Changes struct {
	Added     int
	Removed   int
	Updated   int
	Unchanged int
}

// Diff compares the current records with a previous build.
func Diff(previous, current []domain.SearchRecord) Changes {
	before := make(map[string]domain.SearchRecord, len(previous))
	for _, rec := range previous {
		before[rec.ObjectID] = rec
	}

	var c Changes
	seen := make(map[string]bool, len(current))
	for _, rec := range current {
		seen[rec.ObjectID] = true
		old, ok := before[rec.ObjectID]
		switch {
		case !ok:
			c.Added++
		case equalRecords(old, rec):
			c.Unchanged++
		default:
			c.Updated++
		}
	}
	for id := range before {
		if !seen[id] {
			c.Removed++
		}
	}
	return c
}

func equalRecords(a, b domain.SearchRecord) bool {
	return a.ObjectID == b.ObjectID &&
		a.Lang == b.Lang &&
		a.Title == b.Title &&
		a.URL == b.URL &&
		a.Description == b.Description &&
		a.Fulltext == b.Fulltext &&
		slices.Equal(a.Authors, b.Authors) &&
		slices.Equal(a.Tags, b.Tags)
}
