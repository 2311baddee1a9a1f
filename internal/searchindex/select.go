package searchindex

import "github.com/sha1n/sitesearch/internal/domain"

// PostTags are the tags that mark a content item as a blog post.
var PostTags = []string{"post"}

// LivePredicate reports whether a content item is published.
type LivePredicate func(domain.ContentItem) bool

// SelectPosts returns the posts eligible for indexing, in input order.
// An item is eligible when it carries one of PostTags, has a title and a page URL,
// and passes isLive. A nil isLive admits every item.
func SelectPosts(items []domain.ContentItem, isLive LivePredicate) []domain.ContentItem {
	var posts []domain.ContentItem
	for _, item := range items {
		if !item.HasTag(PostTags...) {
			continue
		}
		if item.Data.Title == "" || item.Data.Page.URL == "" {
			continue
		}
		if isLive != nil && !isLive(item) {
			continue
		}
		posts = append(posts, item)
	}
	return posts
}
