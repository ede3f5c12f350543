// Package excerpt finds spans of generated content for highlight and hover.
package excerpt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minWordLen is the length a needle word must exceed to be used as a fallback.
const minWordLen = 3

// Span is a half-open byte range [Start, End) into the searched text.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Locate finds needle in haystack ignoring case. When the whole needle is
// absent, the first word of the needle longer than three characters that
// does occur is used instead. found is false when nothing matched.
func Locate(needle, haystack string) (span Span, found bool) {
	needle = strings.TrimSpace(needle)
	if needle == "" || haystack == "" {
		return Span{}, false
	}

	if start, n := indexFold(haystack, needle); start >= 0 {
		return Span{Start: start, End: start + n}, true
	}

	for _, word := range strings.Fields(needle) {
		if utf8.RuneCountInString(word) <= minWordLen {
			continue
		}
		if start, n := indexFold(haystack, word); start >= 0 {
			return Span{Start: start, End: start + n}, true
		}
	}
	return Span{}, false
}

// Split cuts text around span. An out of range span yields the whole text
// as before.
func Split(text string, span Span) (before, match, after string) {
	if span.Start < 0 || span.End > len(text) || span.Start >= span.End {
		return text, "", ""
	}
	return text[:span.Start], text[span.Start:span.End], text[span.End:]
}

// indexFold returns the byte offset and byte length in s of the first
// case-insensitive occurrence of substr, or -1.
func indexFold(s, substr string) (int, int) {
	for i := 0; i < len(s); {
		if n, ok := prefixFold(s[i:], substr); ok {
			return i, n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, 0
}

// prefixFold reports whether s starts with prefix under simple case
// folding and how many bytes of s the prefix covered.
func prefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
