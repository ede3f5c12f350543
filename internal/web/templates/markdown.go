package templates

import (
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/nleiva/contentscale/internal/excerpt"
)

// Private use runes survive markdown rendering untouched and are swapped
// for <mark> tags afterwards.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

// Topics are user text interpolated into the copy, so raw HTML is dropped
// and only safe link schemes become anchors.
const htmlFlags = blackfriday.CommonHTMLFlags | blackfriday.SkipHTML |
	blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.NoreferrerLinks

// Markdown renders generated copy as HTML.
func Markdown(src string) string {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: htmlFlags,
	})
	return string(blackfriday.Run([]byte(src), blackfriday.WithRenderer(r)))
}

// Highlighted renders src with span wrapped in <mark>. Each non-blank line
// of the match gets its own mark so block elements stay balanced.
func Highlighted(src string, span excerpt.Span) string {
	before, match, after := excerpt.Split(src, span)
	if match == "" {
		return Markdown(src)
	}
	lines := strings.Split(match, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = markOpen + line + markClose
		}
	}
	out := Markdown(before + strings.Join(lines, "\n") + after)
	out = strings.ReplaceAll(out, markOpen, `<mark class="highlight">`)
	return strings.ReplaceAll(out, markClose, "</mark>")
}
