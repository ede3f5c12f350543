// Package content fabricates localized marketing copy from hand-written
// templates and applies follow-up edits to it.
package content

import (
	"context"
	"log/slog"

	"github.com/nleiva/contentscale/internal/catalog"
)

// Request identifies one piece of content to generate.
type Request struct {
	Topic       string
	Country     string
	ContentType string
	Language    string
}

// Translator turns English copy into another language. It never fails:
// implementations return the input when they cannot translate.
type Translator interface {
	Live() bool
	TranslateContent(ctx context.Context, text, language string) string
}

// Synthesizer renders templates for a (topic, country, type, language) tuple.
type Synthesizer struct {
	catalog    *catalog.Catalog
	translator Translator
}

// NewSynthesizer creates a synthesizer. translator may be nil, in which case
// non-English requests use the authored templates or stay in English.
func NewSynthesizer(c *catalog.Catalog, translator Translator) *Synthesizer {
	if c == nil {
		c = catalog.Default()
	}
	return &Synthesizer{catalog: c, translator: translator}
}

// Synthesize always returns content. Unknown countries and content types
// fall back to generic phrasing.
func (s *Synthesizer) Synthesize(ctx context.Context, r Request) string {
	if r.Language == "" {
		r.Language = catalog.DefaultLanguage
	}

	slog.Debug("generation brief", "country", r.Country, "type", r.ContentType,
		"brief", Brief(s.catalog, r.Topic, r.Country, r.ContentType))

	if s.catalog.IsEnglish(r.Language) {
		return s.English(r)
	}

	live := s.translator != nil && s.translator.Live()
	if !live {
		country := s.catalog.CountryOrFallback(r.Country)
		if text, ok := localizedBlog(r, country.Name, s.catalog.DisplayName(r.ContentType)); ok {
			slog.Debug("using authored template", "language", r.Language)
			return text
		}
	}

	english := s.English(r)
	if s.translator == nil {
		return english
	}
	return s.translator.TranslateContent(ctx, english, r.Language)
}

// English renders the English template for r without translation.
func (s *Synthesizer) English(r Request) string {
	if r.Language == "" {
		r.Language = catalog.DefaultLanguage
	}
	country := s.catalog.CountryOrFallback(r.Country)
	typeName := s.catalog.DisplayName(r.ContentType)

	switch CategoryOf(r.ContentType) {
	case CategoryBlog:
		return renderBlog(r, country, typeName)
	case CategoryInstagram:
		return renderInstagram(r, country, typeName)
	case CategoryEmail:
		return renderEmail(r, country)
	case CategorySMS:
		return renderSMS(r, country)
	case CategoryArticle:
		return renderArticle(r, country, typeName)
	default:
		return renderDefault(r, country, typeName)
	}
}

// Modify applies a follow-up instruction to previously generated content.
// The bool is false when no modification rule matched and the caller should
// regenerate instead.
func (s *Synthesizer) Modify(previous, instruction, country, contentType string) (string, bool) {
	return Modify(previous, instruction, s.catalog.CountryName(country), s.catalog.DisplayName(contentType))
}
