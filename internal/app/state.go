package app

import (
	"slices"
	"strings"
	"time"

	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/excerpt"
	"github.com/nleiva/contentscale/pkg/backend"
)

const (
	DefaultCountry = "US"
	DefaultAsset   = "blog-post"

	// GoldenPrompt is the suggested first prompt offered in the chat panel.
	GoldenPrompt = "Pinecore drink's health benefits and how its the new health revolution"

	initialGreeting = "Hello! I'm here to help you create content. What would you like to work on today?"

	// HighlightDuration is how long an excerpt stays highlighted.
	HighlightDuration = 3 * time.Second

	variantMarker = "-var-"
)

// Message is one chat message. Assistant messages use backend.RoleAssistant.
type Message struct {
	ID        string       `json:"id"`
	Role      backend.Role `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
}

// Conversation is an independent chat thread.
type Conversation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Messages    []Message `json:"messages"`
	LastUpdated time.Time `json:"last_updated"`
}

// UserMessages returns the content of every user message in order.
func (c Conversation) UserMessages() []string {
	var out []string
	for _, m := range c.Messages {
		if m.Role == backend.RoleUser {
			out = append(out, m.Content)
		}
	}
	return out
}

// GeneratedContent is one generation result. It is never mutated; a
// regeneration replaces it.
type GeneratedContent struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	Country     string    `json:"country"`
	ContentType string    `json:"content_type"`
	Language    string    `json:"language"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

// Combination is one (asset type, country) pair of the current selection.
type Combination struct {
	Asset       string `json:"asset"`
	Country     string `json:"country"`
	AssetName   string `json:"asset_name"`
	CountryName string `json:"country_name"`
}

// Key identifies the combination in selection state.
func (c Combination) Key() string {
	return c.Asset + "-" + c.Country
}

// Label is the combination's display text.
func (c Combination) Label() string {
	return c.AssetName + " - " + c.CountryName
}

// Variant is an independent saved copy of generated content.
type Variant struct {
	ID          string           `json:"id"`
	Asset       string           `json:"asset"`
	Country     string           `json:"country"`
	AssetName   string           `json:"asset_name"`
	CountryName string           `json:"country_name"`
	Number      int              `json:"variant_number"`
	Content     GeneratedContent `json:"content"`
}

// LibraryItem is content the user chose to keep for the session.
type LibraryItem struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Country       string           `json:"country"`
	CountryName   string           `json:"country_name"`
	AssetType     string           `json:"asset_type"`
	AssetTypeName string           `json:"asset_type_name"`
	Language      string           `json:"language"`
	Content       GeneratedContent `json:"content"`
	Timestamp     time.Time        `json:"timestamp"`
}

// Highlight marks an excerpt of the displayed content until it expires.
type Highlight struct {
	Span      excerpt.Span
	ContentID string
	Until     time.Time
}

// State is the whole application state of one session. It only changes
// through Store.Dispatch.
type State struct {
	Countries           []string
	Assets              []string
	Language            string
	Conversations       []Conversation
	CurrentConversation string
	Content             *GeneratedContent
	Variants            []Variant
	Library             []LibraryItem
	Highlight           *Highlight
	Combination         string
	Batch               []GeneratedContent
	Generating          bool
}

func greeting(now time.Time) Message {
	return Message{ID: "greeting", Role: backend.RoleAssistant, Content: initialGreeting, Timestamp: now}
}

// NewState returns the state a fresh session starts with.
func NewState(now time.Time) State {
	seeds := []struct {
		id, name string
		age      time.Duration
	}{
		{"1", "Pinecore health blog", 0},
		{"2", "Summer campaign 2024", 24 * time.Hour},
		{"3", "Product launch", 48 * time.Hour},
	}
	s := State{
		Countries:           []string{DefaultCountry},
		Assets:              []string{DefaultAsset},
		Language:            catalog.DefaultLanguage,
		CurrentConversation: "1",
	}
	for _, seed := range seeds {
		s.Conversations = append(s.Conversations, Conversation{
			ID:          seed.id,
			Name:        seed.name,
			Messages:    []Message{greeting(now)},
			LastUpdated: now.Add(-seed.age),
		})
	}
	return s
}

// Current returns the selected conversation, or the first one.
func (s State) Current() Conversation {
	for _, c := range s.Conversations {
		if c.ID == s.CurrentConversation {
			return c
		}
	}
	if len(s.Conversations) > 0 {
		return s.Conversations[0]
	}
	return Conversation{}
}

// Country is the market chat generation targets.
func (s State) Country() string {
	if len(s.Countries) > 0 {
		return s.Countries[0]
	}
	return DefaultCountry
}

// Asset is the content type chat generation targets.
func (s State) Asset() string {
	if len(s.Assets) > 0 {
		return s.Assets[0]
	}
	return DefaultAsset
}

// Combinations lists every selected asset crossed with every selected
// country, skipping unknown codes.
func (s State) Combinations(c *catalog.Catalog) []Combination {
	var out []Combination
	for _, a := range s.Assets {
		ct, ok := c.ContentType(a)
		if !ok {
			continue
		}
		for _, code := range s.Countries {
			country, ok := c.Country(code)
			if !ok {
				continue
			}
			out = append(out, Combination{Asset: a, Country: code, AssetName: ct.Name, CountryName: country.Name})
		}
	}
	return out
}

// IsVariantKey reports whether a combination key selects a variant.
func IsVariantKey(key string) bool {
	return strings.Contains(key, variantMarker)
}

// Variant returns the variant with the given ID.
func (s State) Variant(id string) (Variant, bool) {
	i := slices.IndexFunc(s.Variants, func(v Variant) bool { return v.ID == id })
	if i < 0 {
		return Variant{}, false
	}
	return s.Variants[i], true
}

// Displayed returns the content on screen: the selected variant's copy, or
// the main content.
func (s State) Displayed() *GeneratedContent {
	if IsVariantKey(s.Combination) {
		if v, ok := s.Variant(s.Combination); ok {
			c := v.Content
			return &c
		}
	}
	return s.Content
}

// ActiveHighlight returns the highlighted span if it has not expired and
// still belongs to the displayed content.
func (s State) ActiveHighlight(now time.Time) (excerpt.Span, bool) {
	h := s.Highlight
	if h == nil || !now.Before(h.Until) {
		return excerpt.Span{}, false
	}
	if d := s.Displayed(); d == nil || d.ID != h.ContentID {
		return excerpt.Span{}, false
	}
	return h.Span, true
}

// clone copies every slice so snapshots never alias store state.
func (s State) clone() State {
	out := s
	out.Countries = slices.Clone(s.Countries)
	out.Assets = slices.Clone(s.Assets)
	out.Variants = slices.Clone(s.Variants)
	out.Library = slices.Clone(s.Library)
	out.Batch = slices.Clone(s.Batch)
	out.Conversations = make([]Conversation, len(s.Conversations))
	for i, c := range s.Conversations {
		c.Messages = slices.Clone(c.Messages)
		out.Conversations[i] = c
	}
	if s.Content != nil {
		c := *s.Content
		out.Content = &c
	}
	if s.Highlight != nil {
		h := *s.Highlight
		out.Highlight = &h
	}
	return out
}
