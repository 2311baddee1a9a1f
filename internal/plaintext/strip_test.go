package plaintext

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{"<p>Writes about <strong>Go</strong>.</p>", "Writes about Go."},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<script>alert(1)</script>safe", "safe"},
		{"<a href=\"/x\">link</a> text", "link text"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
