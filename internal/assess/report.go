package assess

import (
	"strings"
	"unicode/utf8"

	"github.com/nleiva/contentscale/internal/excerpt"
)

// Suggestion points at a part of the content. Span is meaningful only when
// Found is true.
type Suggestion struct {
	Text    string       `json:"text"`
	Excerpt string       `json:"excerpt"`
	Span    excerpt.Span `json:"span"`
	Found   bool         `json:"found"`
}

// Metric is one scored dimension with its suggestions.
type Metric struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Score       int          `json:"score"`
	MaxScore    int          `json:"maxScore"`
	Description string       `json:"description"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Report is the full assessment panel for one piece of content.
type Report struct {
	Scores  Scores   `json:"scores"`
	Metrics []Metric `json:"metrics"`
	Overall int      `json:"overall"`
	Label   string   `json:"label"`
	Color   string   `json:"color"`
}

// Empty reports whether there was no content to assess.
func (r Report) Empty() bool {
	return len(r.Metrics) == 0
}

// Assess scores content and attaches excerpt-linked suggestions. Blank
// content yields an empty report.
func Assess(content, country string) Report {
	if strings.TrimSpace(content) == "" {
		return Report{}
	}

	s := Score(content, country)
	head := opening(content)
	r := Report{
		Scores: s,
		Metrics: []Metric{
			{"readability", "Readability", s.Readability, 100,
				"How easy the content is to read and understand", readabilitySuggestions(content)},
			{"engagement", "Engagement", s.Engagement, 100,
				"Potential to capture and hold audience attention", engagementSuggestions(content)},
			{"tone-of-voice", "Tone of Voice", s.Tone, 100,
				"Consistency and appropriateness of communication style", toneSuggestions(content)},
			{"cultural-fit", "Cultural Fit", s.CulturalFit, 100,
				"Alignment with target market cultural preferences",
				[]Suggestion{head("Excellent cultural adaptation for the target market")}},
			{"seo-score", "SEO Score", s.SEO, 100,
				"Search engine optimization potential",
				[]Suggestion{head("Add more relevant keywords in the title and headers")}},
			{"brand-alignment", "Brand Alignment", s.BrandAlignment, 100,
				"Consistency with brand voice and messaging",
				[]Suggestion{head("Strong brand voice consistency throughout")}},
		},
	}
	r.Overall = s.Overall()
	r.Label = Label(r.Overall)
	r.Color = Color(r.Overall)
	return r
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// advance moves n runes forward from byte offset start, stopping at len(s).
func advance(s string, start, n int) int {
	pos := start
	for i := 0; i < n && pos < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}

// runeOffset converts a rune index into a byte offset.
func runeOffset(s string, runes int) int {
	return advance(s, 0, runes)
}

func opening(content string) func(text string) Suggestion {
	return func(text string) Suggestion {
		return Suggestion{
			Text:    text,
			Excerpt: runePrefix(content, 100) + "...",
			Span:    excerpt.Span{Start: 0, End: runeOffset(content, 100)},
			Found:   true,
		}
	}
}

func paragraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func readabilitySuggestions(content string) []Suggestion {
	var out []Suggestion

	for _, s := range sentences(content) {
		if utf8.RuneCountInString(s) <= longSentence {
			continue
		}
		span, found := excerpt.Locate(runePrefix(s, 50), content)
		out = append(out, Suggestion{
			Text:    "Consider breaking this long sentence for better readability",
			Excerpt: runePrefix(strings.TrimSpace(s), 100) + "...",
			Span:    span,
			Found:   found,
		})
		break
	}

	if ps := paragraphs(content); len(ps) > 1 {
		second := runePrefix(ps[1], 100)
		span, found := excerpt.Locate(runePrefix(second, 30), content)
		out = append(out, Suggestion{
			Text:    "Add transition words to improve flow between paragraphs",
			Excerpt: second + "...",
			Span:    span,
			Found:   found,
		})
	}
	return out
}

func engagementSuggestions(content string) []Suggestion {
	parts := strings.Split(content, "\n\n")

	first := parts[0]
	if first == "" {
		first = runePrefix(content, 200)
	}
	span, found := excerpt.Locate(runePrefix(first, 50), content)
	if found {
		span.End = advance(content, span.Start, 100)
	}
	hook := Suggestion{
		Text:    "Add a compelling hook or question to increase engagement",
		Excerpt: runePrefix(first, 100) + "...",
		Span:    span,
		Found:   found,
	}

	last := parts[len(parts)-1]
	if last == "" {
		last = content[runeOffset(content, max(utf8.RuneCountInString(content)-200, 0)):]
	}
	span, found = excerpt.Locate(runePrefix(last, 30), content)
	if found {
		span.End = advance(content, span.End, 50)
	}
	cta := Suggestion{
		Text:    "Include a strong call-to-action in the conclusion",
		Excerpt: runePrefix(last, 100) + "...",
		Span:    span,
		Found:   found,
	}
	return []Suggestion{hook, cta}
}

var formalPhrases = []string{"furthermore", "moreover", "in conclusion", "it is important to note"}

func toneSuggestions(content string) []Suggestion {
	var out []Suggestion

	for _, phrase := range formalPhrases {
		span, found := excerpt.Locate(phrase, content)
		if !found || span.Len() != len(phrase) {
			// only whole-phrase matches count here
			continue
		}
		from := backRunes(content, span.Start, 50)
		to := advance(content, span.End, 50)
		out = append(out, Suggestion{
			Text:    "Consider using more conversational language here",
			Excerpt: content[from:to],
			Span:    span,
			Found:   true,
		})
		break
	}

	n := utf8.RuneCountInString(content)
	midStart := runeOffset(content, n*3/10)
	midEnd := runeOffset(content, n*7/10)
	out = append(out, Suggestion{
		Text:    "Add more personality and brand voice to this section",
		Excerpt: runePrefix(content[midStart:midEnd], 100) + "...",
		Span:    excerpt.Span{Start: midStart, End: advance(content, midStart, 100)},
		Found:   true,
	})
	return out
}

// backRunes moves n runes backward from byte offset end, stopping at 0.
func backRunes(s string, end, n int) int {
	pos := end
	for i := 0; i < n && pos > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return pos
}
