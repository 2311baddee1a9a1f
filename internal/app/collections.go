package app

import (
	"github.com/sha1n/sitesearch/internal/config"
	"github.com/sha1n/sitesearch/internal/content"
	"github.com/sha1n/sitesearch/internal/domain"
	"github.com/sha1n/sitesearch/internal/searchindex"
)

// BuildCollections builds the authors, newsletters and tags collections from the site
// content. The authors map is complete before any post is mapped.
func BuildCollections(site *content.Collection, c config.CollectionSettings, baseURL string, isLive func(domain.ContentItem) bool) (searchindex.Collections, error) {
	authors, err := content.BuildAuthors(site.FilteredByGlob(c.Authors))
	if err != nil {
		return searchindex.Collections{}, err
	}

	posts := searchindex.SelectPosts(site.FilteredByGlob(c.Posts), isLive)
	tags := content.BuildTags(posts, site.FilteredByGlob(c.Tags), baseURL, searchindex.PostTags)

	return searchindex.Collections{
		Authors:     authors,
		AuthorsFeed: content.AuthorsFeed(authors),
		Newsletters: content.BuildNewsletters(site.FilteredByGlob(c.Newsletters), isLive),
		Tags:        content.TagsFeed(tags),
	}, nil
}
