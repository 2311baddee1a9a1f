package searchindex

import (
	"fmt"

	"github.com/sha1n/sitesearch/internal/domain"
	"github.com/sha1n/sitesearch/internal/plaintext"
)

// DefaultLang is the only language currently wired into the site.
const DefaultLang = "en"

// Options configures a Builder. Zero values fall back to defaults.
type Options struct {
	Lang      string
	MaxLength int

	// IsLive gates posts by publish status. Nil admits every post.
	IsLive LivePredicate

	// PlainText converts markdown bodies to plain text. Defaults to plaintext.FromMarkdown.
	PlainText func(markdown string) string
}

// Collections holds the pre-built site collections the records are derived from.
// The authors map must be complete before Build runs since posts resolve their authors from it.
type Collections struct {
	// Authors indexes the authors collection by key.
	Authors map[string]domain.Author

	// AuthorsFeed is the authors collection in presentation order.
	AuthorsFeed []domain.Author

	Newsletters []domain.ContentItem

	// Tags is the tags collection in presentation order.
	Tags []domain.Tag
}

// Builder turns site content into search records.
type Builder struct {
	lang      string
	maxLength int
	isLive    LivePredicate
	plainText func(string) string
}

// NewBuilder creates a new record builder.
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		lang:      opts.Lang,
		maxLength: opts.MaxLength,
		isLive:    opts.IsLive,
		plainText: opts.PlainText,
	}
	if b.lang == "" {
		b.lang = DefaultLang
	}
	if b.maxLength <= 0 {
		b.maxLength = DefaultMaxLength
	}
	if b.plainText == nil {
		b.plainText = plaintext.FromMarkdown
	}
	return b
}

// Build returns the search records for the site: posts, authors, newsletters and tags,
// in that order. Items within each group keep the order they were given in.
// Build fails if a post references an author missing from cols.Authors.
func (b *Builder) Build(items []domain.ContentItem, cols Collections) ([]domain.SearchRecord, error) {
	posts := SelectPosts(items, b.isLive)

	records := make([]domain.SearchRecord, 0, len(posts)+len(cols.AuthorsFeed)+len(cols.Newsletters)+len(cols.Tags))

	for _, post := range posts {
		rec, err := b.MapPost(post, cols.Authors)
		if err != nil {
			return nil, fmt.Errorf("failed to map post: %w", err)
		}
		records = append(records, rec)
	}

	for _, author := range cols.AuthorsFeed {
		records = append(records, b.MapAuthor(author))
	}

	for _, issue := range cols.Newsletters {
		records = append(records, b.MapNewsletter(issue))
	}

	for _, tag := range cols.Tags {
		records = append(records, b.MapTag(tag))
	}

	return records, nil
}

// Lang returns the language code stamped on every record.
func (b *Builder) Lang() string {
	return b.lang
}
