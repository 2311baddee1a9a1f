package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/sha1n/sitesearch/internal/domain"
)

// Extensions lists the file extensions treated as content.
var Extensions = []string{".md", ".markdown"}

// dateLayouts are the accepted front matter date formats.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// frontMatter is the raw front matter block. Tags and authors stay untyped
// so malformed values can be told apart from absent ones.
type frontMatter struct {
	Title        string `yaml:"title"`
	Tags         any    `yaml:"tags"`
	Authors      any    `yaml:"authors"`
	Description  string `yaml:"description"`
	CanonicalURL string `yaml:"canonicalUrl"`
	Permalink    string `yaml:"permalink"`
	Date         string `yaml:"date"`
	Draft        bool   `yaml:"draft"`
	Key          string `yaml:"key"`
}

// Loader reads a content directory into a Collection.
type Loader struct {
	baseURL  string
	excludes []string
	logger   *slog.Logger
}

// NewLoader creates a loader. baseURL prefixes page URLs to form canonical URLs.
func NewLoader(baseURL string) *Loader {
	return &Loader{
		baseURL:  strings.TrimRight(baseURL, "/"),
		excludes: DefaultExcludePatterns,
		logger:   slog.Default(),
	}
}

// WithLogger returns the loader using the given logger.
func (l *Loader) WithLogger(logger *slog.Logger) *Loader {
	l.logger = logger
	return l
}

// Load walks dir and parses every content file below it.
// A file with malformed front matter fails the whole load.
func (l *Loader) Load(ctx context.Context, dir string) (*Collection, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path is not a directory: %s", dir)
	}

	var items []domain.ContentItem
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if relPath == "." {
			return nil
		}

		if isExcluded(l.excludes, relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasContentExtension(relPath) {
			return nil
		}

		src, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		item, err := l.Parse(relPath, src)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Debug("Loaded content", "dir", dir, "items", len(items))
	return NewCollection(items), nil
}

// Parse decodes a single content file. relPath is relative to the content directory.
func (l *Loader) Parse(relPath string, src []byte) (domain.ContentItem, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &fm)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("failed to parse front matter of %s: %w", relPath, err)
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("invalid date in %s: %w", relPath, err)
	}

	tags, ok := stringList(fm.Tags)
	if !ok {
		l.logger.Debug("Ignoring tags that are not a list", "path", relPath)
	}
	authors, ok := stringList(fm.Authors)
	if !ok {
		if key, isString := fm.Authors.(string); isString && key != "" {
			authors = []string{key}
		} else {
			l.logger.Debug("Ignoring authors that are not a list", "path", relPath)
		}
	}

	url, slug := pageURL(relPath, fm.Permalink)
	canonical := fm.CanonicalURL
	if canonical == "" {
		canonical = l.baseURL + url
	}

	return domain.ContentItem{
		InputPath: relPath,
		Data: domain.ItemData{
			Title:        fm.Title,
			Tags:         tags,
			Authors:      authors,
			Description:  fm.Description,
			CanonicalURL: canonical,
			Page:         domain.Page{URL: url, FileSlug: slug},
			Date:         date,
			Draft:        fm.Draft,
			Key:          fm.Key,
		},
		Template: domain.Template{Content: string(body)},
	}, nil
}

// stringList converts a decoded YAML sequence of scalars to strings.
// It returns false when v is present but not a sequence; nil yields (nil, true).
func stringList(v any) ([]string, bool) {
	if v == nil {
		return nil, true
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		switch e := e.(type) {
		case nil:
			continue
		case string:
			out = append(out, e)
		default:
			out = append(out, fmt.Sprint(e))
		}
	}
	return out, true
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// pageURL derives the published URL and file slug of a content file.
// "posts/hello.md" maps to "/posts/hello/", "posts/2024/index.md" to "/posts/2024/".
// A permalink overrides the derived URL.
func pageURL(relPath, permalink string) (url, slug string) {
	dir, file := path.Split(relPath)
	dir = strings.TrimSuffix(dir, "/")
	slug = strings.TrimSuffix(file, path.Ext(file))

	if slug == "index" {
		slug = path.Base(dir)
		if dir == "" {
			slug = ""
		}
		url = "/" + dir + "/"
	} else {
		url = "/" + path.Join(dir, slug) + "/"
	}
	url = strings.ReplaceAll(url, "//", "/")

	if permalink = strings.TrimSpace(permalink); permalink != "" {
		if !strings.HasPrefix(permalink, "/") {
			permalink = "/" + permalink
		}
		url = permalink
	}
	return url, slug
}

func hasContentExtension(relPath string) bool {
	ext := strings.ToLower(path.Ext(relPath))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
