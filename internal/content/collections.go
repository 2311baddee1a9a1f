package content

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/sha1n/sitesearch/internal/domain"
	"github.com/sha1n/sitesearch/internal/plaintext"
)

// TagsPathPrefix is the URL prefix of generated tag pages.
const TagsPathPrefix = "/tags/"

// BuildAuthors indexes author pages by key. Two pages claiming the same key is an error.
func BuildAuthors(pages []domain.ContentItem) (map[string]domain.Author, error) {
	authors := make(map[string]domain.Author, len(pages))
	for _, page := range pages {
		key := page.CollectionKey()
		if existing, ok := authors[key]; ok {
			return nil, fmt.Errorf("duplicate author key %q: %s and %s", key, existing.Href, page.Data.Page.URL)
		}
		title := page.Data.Title
		if title == "" {
			title = key
		}
		authors[key] = domain.Author{
			Key:          key,
			Title:        title,
			Description:  plaintext.StripTags(page.Data.Description),
			Href:         page.Data.Page.URL,
			CanonicalURL: page.Data.CanonicalURL,
		}
	}
	return authors, nil
}

// AuthorsFeed orders authors by title, then key.
func AuthorsFeed(authors map[string]domain.Author) []domain.Author {
	feed := make([]domain.Author, 0, len(authors))
	for _, a := range authors {
		feed = append(feed, a)
	}
	slices.SortFunc(feed, func(a, b domain.Author) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			strings.Compare(a.Key, b.Key),
		)
	})
	return feed
}

// BuildNewsletters returns the live newsletter issues, newest first.
// Undated issues sort last, ties keep input path order.
func BuildNewsletters(issues []domain.ContentItem, isLive func(domain.ContentItem) bool) []domain.ContentItem {
	var live []domain.ContentItem
	for _, issue := range issues {
		if isLive == nil || isLive(issue) {
			live = append(live, issue)
		}
	}
	slices.SortStableFunc(live, func(a, b domain.ContentItem) int {
		return b.Data.Date.Compare(a.Data.Date)
	})
	return live
}

// BuildTags collects every tag used by the given posts, skipping the marker tags in ignore.
// Tag pages supply the title and description of a tag when their key matches the tag slug.
// Tag pages without posts are kept with a zero count.
func BuildTags(posts, tagPages []domain.ContentItem, baseURL string, ignore []string) []domain.Tag {
	baseURL = strings.TrimRight(baseURL, "/")
	tags := make(map[string]*domain.Tag)

	for _, page := range tagPages {
		key := Slugify(page.CollectionKey())
		if key == "" {
			continue
		}
		title := page.Data.Title
		if title == "" {
			title = key
		}
		tags[key] = &domain.Tag{
			Key:          key,
			Title:        title,
			Description:  plaintext.StripTags(page.Data.Description),
			Href:         page.Data.Page.URL,
			CanonicalURL: page.Data.CanonicalURL,
		}
	}

	for _, post := range posts {
		seen := make(map[string]bool)
		for _, name := range post.Data.Tags {
			if slices.Contains(ignore, name) {
				continue
			}
			key := Slugify(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			tag, ok := tags[key]
			if !ok {
				href := TagsPathPrefix + key + "/"
				tag = &domain.Tag{
					Key:          key,
					Title:        name,
					Href:         href,
					CanonicalURL: baseURL + href,
				}
				tags[key] = tag
			}
			tag.Count++
		}
	}

	out := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		out = append(out, *tag)
	}
	return out
}

// TagsFeed orders tags by post count, most used first, then by title.
func TagsFeed(tags []domain.Tag) []domain.Tag {
	feed := slices.Clone(tags)
	slices.SortFunc(feed, func(a, b domain.Tag) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			strings.Compare(a.Key, b.Key),
		)
	})
	return feed
}

// Slugify lowercases s and replaces every run of characters other than
// letters and digits with a single dash.
func Slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
