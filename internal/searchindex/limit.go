package searchindex

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the fulltext budget per record. The index service rejects
// records above roughly 10KB, the remaining space is left to the other fields.
const DefaultMaxLength = 7500

// Limit truncates text to at most maxLength bytes.
// When truncation is needed it cuts at the last line break at or before maxLength,
// excluding the break itself. Without a line break it cuts at maxLength, backing off
// to the previous rune boundary so the result stays valid UTF-8.
// The result is always a prefix of text.
func Limit(text string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(text) <= maxLength {
		return text
	}

	if i := strings.LastIndexByte(text[:maxLength+1], '\n'); i >= 0 {
		return strings.TrimSuffix(text[:i], "\r")
	}

	cut := maxLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
