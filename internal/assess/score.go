// Package assess computes heuristic quality scores for generated copy. The
// numbers come from regex counts and fixed deltas; they are indicative only.
package assess

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nleiva/contentscale/internal/catalog"
)

// Scores holds the six metric values, each within its own floor and 100.
type Scores struct {
	Readability    int `json:"readability"`
	Engagement     int `json:"engagement"`
	Tone           int `json:"tone"`
	CulturalFit    int `json:"culturalFit"`
	SEO            int `json:"seo"`
	BrandAlignment int `json:"brandAlignment"`
}

// Overall is the rounded mean of the six metrics.
func (s Scores) Overall() int {
	sum := s.Readability + s.Engagement + s.Tone + s.CulturalFit + s.SEO + s.BrandAlignment
	return int(math.Round(float64(sum) / 6))
}

// Label names a score band.
func Label(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// Color is the UI color for a score band.
func Color(score int) string {
	switch {
	case score >= 85:
		return "#22c55e"
	case score >= 70:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
	questionMark  = regexp.MustCompile(`\?`)
	exclamation   = regexp.MustCompile(`!`)
	bulletLine    = regexp.MustCompile(`(?m)^[-•]`)
	headingLine   = regexp.MustCompile(`(?m)^#{1,3}\s`)
	h1Line        = regexp.MustCompile(`(?m)^#\s`)
	h2Line        = regexp.MustCompile(`(?m)^##\s`)
	listLine      = regexp.MustCompile(`(?m)^[-•\d]`)
	faceEmoji     = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]`)
)

var (
	formalWords       = []string{"furthermore", "moreover", "subsequently", "henceforth"}
	culturalMarkers   = []string{"market", "local", "regional", "cultural", "tradition"}
	professionalWords = []string{"professional", "quality", "expert", "solution", "innovative"}
)

// longSentence is the rune length above which a sentence is penalized.
const longSentence = 150

// Score rates content written for the market with the given country code.
func Score(content, country string) Scores {
	lower := strings.ToLower(content)
	return Scores{
		Readability:    readability(content),
		Engagement:     engagement(content),
		Tone:           tone(lower, country),
		CulturalFit:    culturalFit(lower, country),
		SEO:            seo(content),
		BrandAlignment: brandAlignment(content, lower),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func count(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

func countContained(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func sentences(content string) []string {
	var out []string
	for _, s := range sentenceBreak.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func readability(content string) int {
	parts := sentences(content)
	words := len(strings.Fields(content))
	avg := float64(words) / float64(max(len(parts), 1))

	score := 100
	if avg > 25 {
		score -= 15
	} else if avg > 20 {
		score -= 8
	}
	if avg < 10 {
		score -= 10
	}
	for _, s := range parts {
		if utf8.RuneCountInString(s) > longSentence {
			score -= 5
		}
	}
	return clamp(score, 60, 100)
}

func engagement(content string) int {
	score := 70
	score += min(count(questionMark, content)*3, 15)
	score += min(count(exclamation, content)*2, 10)
	score += min(count(bulletLine, content)*2, 10)
	score += min(count(headingLine, content)*3, 15)
	return clamp(score, 60, 100)
}

// tone favors conversational copy for the US and formal copy for Japan and
// Germany.
func tone(lower, country string) int {
	score := 75
	formal := countContained(lower, formalWords)
	emojis := count(faceEmoji, lower)
	formalMarket := country == "JP" || country == "DE"

	if country == "US" {
		if formal > 3 {
			score -= 10
		}
		if formal == 0 {
			score += 10
		}
		if emojis > 0 {
			score += 5
		}
	}
	if formalMarket {
		if formal > 0 {
			score += 10
		}
		if emojis > 2 {
			score -= 10
		}
	}
	return clamp(score, 65, 100)
}

func culturalFit(lower, country string) int {
	score := 80
	code := strings.ToLower(country)
	name := strings.ToLower(catalog.Default().CountryName(country))

	if (code != "" && strings.Contains(lower, code)) || (name != "" && strings.Contains(lower, name)) {
		score += 12
	}

	mentions := countContained(lower, culturalMarkers)
	if code != "" && strings.Contains(lower, code) {
		mentions++
	}
	score += min(mentions*2, 15)
	return clamp(score, 70, 100)
}

func seo(content string) int {
	score := 65
	if count(h1Line, content) == 1 {
		score += 10
	}
	if count(h2Line, content) >= 2 {
		score += 10
	}
	if n := utf8.RuneCountInString(content); n > 600 && n < 2000 {
		score += 15
	}
	if count(listLine, content) > 3 {
		score += 10
	}
	return clamp(score, 60, 100)
}

func brandAlignment(content, lower string) int {
	score := 82
	if count(headingLine, content) >= 3 {
		score += 8
	}
	score += min(countContained(lower, professionalWords)*2, 10)
	return clamp(score, 70, 100)
}
