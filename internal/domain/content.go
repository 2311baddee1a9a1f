package domain

import "time"

// ContentItem is a single markdown source file of the site after its front matter
// has been decoded. Items are created by the content loader and never mutated.
type ContentItem struct {
	// InputPath is the file path relative to the content directory, slash separated.
	// Example: "posts/2024/hello-world.md"
	InputPath string

	Data     ItemData
	Template Template
}

// ItemData holds the decoded front matter of a content item together with
// the page data derived from its location.
type ItemData struct {
	Title string

	// Tags is nil when the front matter has no tags or when tags is not a sequence.
	Tags []string

	// Authors holds author keys, resolved against the authors collection.
	Authors []string

	Description  string
	CanonicalURL string
	Page         Page

	// Date is the zero time when the front matter carries no date.
	Date  time.Time
	Draft bool

	// Key is an explicit collection key (authors, tags). Empty means the file slug is used.
	Key string
}

// Page describes where an item is published.
type Page struct {
	// URL is the site-relative URL, e.g. "/posts/hello-world/".
	URL string

	// FileSlug is the file name without extension, or the parent directory name for index files.
	FileSlug string
}

// Template holds the raw source of a content item.
type Template struct {
	// Content is the markdown body following the front matter block.
	Content string
}

// HasTag reports whether the item is tagged with any of the given tags.
func (c ContentItem) HasTag(tags ...string) bool {
	for _, have := range c.Data.Tags {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CollectionKey returns the explicit front matter key, falling back to the file slug.
func (c ContentItem) CollectionKey() string {
	if c.Data.Key != "" {
		return c.Data.Key
	}
	return c.Data.Page.FileSlug
}

// Author is an entry of the authors collection.
type Author struct {
	Key          string
	Title        string
	Description  string
	Href         string
	CanonicalURL string
}

// Tag is an entry of the tags collection.
type Tag struct {
	Key          string
	Title        string
	Description  string
	Href         string
	CanonicalURL string

	// Count is the number of live posts carrying the tag.
	Count int
}
