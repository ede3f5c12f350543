package excerpt

import (
	"regexp"
	"strings"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Sentences splits text into punctuated sentences for hover translation.
// Text without terminal punctuation is returned whole.
func Sentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{strings.TrimSpace(text)}
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			out = append(out, s)
		}
	}
	return out
}
