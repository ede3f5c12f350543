package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category groups content types that share one template family.
type Category int

const (
	CategoryDefault Category = iota
	CategoryBlog
	CategoryInstagram
	CategoryEmail
	CategorySMS
	CategoryArticle
)

func (c Category) String() string {
	switch c {
	case CategoryBlog:
		return "blog"
	case CategoryInstagram:
		return "instagram"
	case CategoryEmail:
		return "email"
	case CategorySMS:
		return "sms"
	case CategoryArticle:
		return "article"
	default:
		return "default"
	}
}

// categoryRules is evaluated in order; the first match wins.
var categoryRules = []struct {
	category Category
	match    func(id string) bool
}{
	{CategoryBlog, func(id string) bool { return id == "blog-post" }},
	{CategoryInstagram, func(id string) bool { return strings.Contains(id, "instagram") }},
	{CategoryEmail, func(id string) bool { return id == "email" }},
	{CategorySMS, func(id string) bool { return id == "sms" }},
	{CategoryArticle, func(id string) bool { return strings.Contains(id, "article") }},
}

// CategoryOf maps a content type ID to its template family.
func CategoryOf(contentType string) Category {
	for _, rule := range categoryRules {
		if rule.match(contentType) {
			return rule.category
		}
	}
	return CategoryDefault
}

// Topic is the subject family inferred from the user's topic text.
type Topic int

const (
	TopicGeneric Topic = iota
	TopicHealth
	TopicCelebration
)

func (t Topic) String() string {
	switch t {
	case TopicHealth:
		return "health"
	case TopicCelebration:
		return "celebration"
	default:
		return "generic"
	}
}

var topicRules = []struct {
	topic    Topic
	keywords []string
}{
	{TopicHealth, []string{"health", "wellness", "drink", "benefit"}},
	{TopicCelebration, []string{"celebrat", "party", "event", "festiv"}},
}

// TopicOf infers the topic family by keyword membership.
func TopicOf(topic string) Topic {
	lower := strings.ToLower(topic)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.topic
			}
		}
	}
	return TopicGeneric
}

// phrases is a country-conditional phrase table. The "*" entry is used for
// codes without their own phrase.
type phrases map[string]string

func (p phrases) in(code string) string {
	if v, ok := p[code]; ok {
		return v
	}
	return p["*"]
}

// fill substitutes {placeholders} in tmpl. kv alternates placeholder and value.
func fill(tmpl string, kv ...string) string {
	return strings.NewReplacer(kv...).Replace(tmpl)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func stripHeading(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
