package assess

import (
	"regexp"
	"strings"

	"github.com/nleiva/contentscale/internal/catalog"
)

// Warning is one cultural consideration with the number of matches found.
type Warning struct {
	Text      string `json:"text"`
	Instances int    `json:"instances"`
}

// Guidance is the cultural faux pas panel for one market.
type Guidance struct {
	Country  string    `json:"country"`
	Flag     string    `json:"flag"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Warnings []Warning `json:"warnings"`
}

// Flagged returns the number of warnings with at least one instance.
func (g Guidance) Flagged() int {
	n := 0
	for _, w := range g.Warnings {
		if w.Instances > 0 {
			n++
		}
	}
	return n
}

// fauxPasFamilies maps trigger words found in a warning's text to the
// pattern counted against the content.
var fauxPasFamilies = []struct {
	triggers []string
	pattern  *regexp.Regexp
}{
	{[]string{"formal"}, regexp.MustCompile(`\b(henceforth|heretofore|aforementioned|pursuant|whereby|thereof)\b`)},
	{[]string{"political"}, regexp.MustCompile(`\b(democrat|republican|liberal|conservative|election|vote|campaign|president|congress)\b`)},
	{[]string{"metric", "measurement"}, regexp.MustCompile(`\b(\d+\s*(kilometer|metre|kilogram|celsius|litre)s?)\b`)},
	{[]string{"income", "lifestyle"}, regexp.MustCompile(`\b(rich|poor|wealthy|affluent|luxury|premium|budget|cheap)\b`)},
	{[]string{"superlative", "hyperbole"}, regexp.MustCompile(`\b(best|greatest|most amazing|incredible|unbelievable|revolutionary|game-changing)\b`)},
	{[]string{"casual"}, regexp.MustCompile(`\b(hey|yo|sup|gonna|wanna|yeah|nah)\b`)},
	{[]string{"stereotype"}, regexp.MustCompile(`\b(tea|weather|royal|carnival|soccer|beach|immigrant|poverty)\b`)},
}

// Instances counts matches in content of every pattern family the warning
// text triggers.
func Instances(warning, content string) int {
	lowerWarning := strings.ToLower(warning)
	lowerContent := strings.ToLower(content)

	total := 0
	for _, f := range fauxPasFamilies {
		if !containsAny(lowerWarning, f.triggers) {
			continue
		}
		total += count(f.pattern, lowerContent)
	}
	return total
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// FauxPas checks content against the market's guidance table, falling back
// to the US table for unknown codes.
func FauxPas(content, country string) Guidance {
	c := catalog.Default()
	code := country
	market, ok := c.Country(country)
	if !ok {
		code = "US"
		market, _ = c.Country(code)
	}

	g := Guidance{
		Country: code,
		Flag:    market.Flag,
		Title:   market.Guidance.Title,
		Summary: market.Guidance.Summary,
	}
	for _, w := range market.Guidance.Warnings {
		g.Warnings = append(g.Warnings, Warning{Text: w, Instances: Instances(w, content)})
	}
	return g
}
