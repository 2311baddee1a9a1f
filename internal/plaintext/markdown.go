package plaintext

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// FromMarkdown renders markdown and returns its visible text.
// Block elements end up on their own lines so the result can be cut at line boundaries.
// Raw HTML embedded in the source is dropped.
func FromMarkdown(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return normalizeLines(source)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return normalizeLines(source)
	}

	return normalizeLines(doc.Find("body").Text())
}

// normalizeLines trims trailing whitespace from every line, collapses runs of
// blank lines into one and trims the result.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
