package plaintext

import (
	"strings"
	"testing"
)

func TestFromMarkdown(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "empty",
			source: "",
			want:   "",
		},
		{
			name:   "whitespace only",
			source: "  \n\n ",
			want:   "",
		},
		{
			name:   "heading and paragraph",
			source: "# Title\n\nSome *emphasis* and a [link](https://example.com).\n",
			want:   "Title\nSome emphasis and a link.",
		},
		{
			name:   "soft line breaks kept",
			source: "line one\nline two\n",
			want:   "line one\nline two",
		},
		{
			name:   "entities decoded",
			source: "Fish & chips < 5 euros",
			want:   "Fish & chips < 5 euros",
		},
		{
			name:   "list items on own lines",
			source: "- first\n- second\n",
			want:   "first\nsecond",
		},
		{
			name:   "inline code",
			source: "Call `Limit` twice.",
			want:   "Call Limit twice.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMarkdown(tt.source); got != tt.want {
				t.Errorf("FromMarkdown(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestFromMarkdown_DropsRawHTML(t *testing.T) {
	got := FromMarkdown("before\n\n<div class=\"x\">raw</div>\n\nafter\n")

	if strings.Contains(got, "<") || strings.Contains(got, "div") {
		t.Errorf("Expected markup to be removed, got %q", got)
	}
	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Errorf("Expected surrounding text to survive, got %q", got)
	}
}

func TestFromMarkdown_CollapsesBlankLines(t *testing.T) {
	got := FromMarkdown("```\ncode\n```\n\n\n\nparagraph\n")

	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Expected blank line runs to be collapsed, got %q", got)
	}
	if !strings.Contains(got, "code") || !strings.Contains(got, "paragraph") {
		t.Errorf("Expected code and paragraph text, got %q", got)
	}
}

func TestNormalizeLines(t *testing.T) {
	got := normalizeLines("  a  \r\n\n\n\nb\t\n\n")
	if got != "a\n\nb" {
		t.Errorf("normalizeLines = %q, want %q", got, "a\n\nb")
	}
}
