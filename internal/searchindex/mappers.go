package searchindex

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sha1n/sitesearch/internal/domain"
)

// ErrUnknownAuthor indicates a post references an author key missing from the authors collection.
var ErrUnknownAuthor = errors.New("unknown author")

// UnknownAuthorError describes a failed author lookup.
type UnknownAuthorError struct {
	Post string
	Key  string
}

func (e *UnknownAuthorError) Error() string {
	return fmt.Sprintf("post %s references unknown author %q", e.Post, e.Key)
}

func (e *UnknownAuthorError) Unwrap() error {
	return ErrUnknownAuthor
}

// MapPost converts a post into a search record.
// Author keys are resolved to display names; a missing key fails the mapping.
func (b *Builder) MapPost(post domain.ContentItem, authors map[string]domain.Author) (domain.SearchRecord, error) {
	var names []string
	for _, key := range post.Data.Authors {
		author, ok := authors[key]
		if !ok {
			return domain.SearchRecord{}, &UnknownAuthorError{Post: post.InputPath, Key: key}
		}
		names = append(names, author.Title)
	}

	return domain.SearchRecord{
		ObjectID:    domain.ObjectID(post.Data.Page.URL, b.lang),
		Lang:        b.lang,
		Title:       post.Data.Title,
		URL:         post.Data.CanonicalURL,
		Description: post.Data.Description,
		Fulltext:    b.fulltext(post.Template.Content),
		Authors:     names,
		Tags:        slices.Clone(post.Data.Tags),
	}, nil
}

// MapAuthor converts an authors collection entry into a search record.
func (b *Builder) MapAuthor(author domain.Author) domain.SearchRecord {
	return domain.SearchRecord{
		ObjectID:    domain.ObjectID(author.Href, b.lang),
		Lang:        b.lang,
		Title:       author.Title,
		URL:         author.CanonicalURL,
		Description: author.Description,
		Fulltext:    Limit(author.Description, b.maxLength),
	}
}

// MapNewsletter converts a newsletter issue into a search record.
func (b *Builder) MapNewsletter(issue domain.ContentItem) domain.SearchRecord {
	return domain.SearchRecord{
		ObjectID:    domain.ObjectID(issue.Data.Page.URL, b.lang),
		Lang:        b.lang,
		Title:       issue.Data.Title,
		URL:         issue.Data.CanonicalURL,
		Description: issue.Data.Description,
		Fulltext:    b.fulltext(issue.Template.Content),
	}
}

// MapTag converts a tags collection entry into a search record.
func (b *Builder) MapTag(tag domain.Tag) domain.SearchRecord {
	return domain.SearchRecord{
		ObjectID:    domain.ObjectID(tag.Href, b.lang),
		Lang:        b.lang,
		Title:       tag.Title,
		URL:         tag.CanonicalURL,
		Description: tag.Description,
		Fulltext:    Limit(tag.Description, b.maxLength),
	}
}

// fulltext converts a markdown body to plain text and bounds it.
func (b *Builder) fulltext(markdown string) string {
	return Limit(b.plainText(markdown), b.maxLength)
}
