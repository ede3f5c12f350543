package app

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/excerpt"
)

// Action is a state transition handled by Reduce.
type Action interface {
	action()
}

type (
	SelectCountries    struct{ Codes []string }
	SelectAssets       struct{ IDs []string }
	UpdateSelection    struct{ Codes, IDs []string }
	SetLanguage        struct{ Language string }
	SelectCombination  struct{ Key string }
	CycleCombination   struct{ Step int }
	SwitchConversation struct{ ID string }
	DeleteConversation struct{ ID string }
	DeleteLibraryItem  struct{ ID string }
	CreateVariant      struct{}
	ClearContent       struct{}

	AppendMessage struct {
		Message Message
	}
	NewConversation struct {
		ID string
		At time.Time
	}
	AddToLibrary struct {
		At time.Time
	}
	SetHighlight struct {
		Span  excerpt.Span
		Until time.Time
	}
	Reset struct {
		ConversationID string
		At             time.Time
	}

	// Only the store commits results, and only for current tickets.
	setContent struct{ Content GeneratedContent }
	setBatch   struct{ Items []GeneratedContent }
)

func (SelectCountries) action()    {}
func (SelectAssets) action()       {}
func (UpdateSelection) action()    {}
func (SetLanguage) action()        {}
func (SelectCombination) action()  {}
func (CycleCombination) action()   {}
func (SwitchConversation) action() {}
func (DeleteConversation) action() {}
func (DeleteLibraryItem) action()  {}
func (CreateVariant) action()      {}
func (ClearContent) action()       {}
func (AppendMessage) action()      {}
func (NewConversation) action()    {}
func (AddToLibrary) action()       {}
func (SetHighlight) action()       {}
func (Reset) action()              {}
func (setContent) action()         {}
func (setBatch) action()           {}

// Reduce returns the state after applying a to s. s is not modified.
func Reduce(c *catalog.Catalog, s State, a Action) (State, error) {
	s = s.clone()

	switch a := a.(type) {
	case SelectCountries:
		codes := make([]string, len(a.Codes))
		for i, code := range a.Codes {
			if _, ok := c.Country(code); !ok {
				return s, NewValidationError("country", code, "unknown market")
			}
			codes[i] = strings.ToUpper(code)
		}
		s.Countries = dedupe(codes)
		normalize(c, &s)

	case SelectAssets:
		for _, id := range a.IDs {
			if ct, ok := c.ContentType(id); !ok || ct.Disabled {
				return s, NewValidationError("asset", id, "not a selectable content type")
			}
		}
		s.Assets = dedupe(a.IDs)
		normalize(c, &s)

	case UpdateSelection:
		next, err := Reduce(c, s, SelectCountries{Codes: a.Codes})
		if err != nil {
			return s, err
		}
		return Reduce(c, next, SelectAssets{IDs: a.IDs})

	case SetLanguage:
		_, country := s.Target()
		if !slices.Contains(c.LanguagesFor(country), a.Language) {
			return s, NewValidationError("language", a.Language, "not available for "+c.CountryName(country))
		}
		s.Language = a.Language

	case SelectCombination:
		_, isVariant := s.Variant(a.Key)
		isCombo := slices.ContainsFunc(s.Combinations(c), func(cb Combination) bool { return cb.Key() == a.Key })
		if !isVariant && !isCombo {
			return s, NewValidationError("combination", a.Key, "not part of the selection")
		}
		s.Combination = a.Key
		fitLanguage(c, &s)

	case CycleCombination:
		combos := s.Combinations(c)
		if len(combos) <= 1 || a.Step == 0 {
			return s, nil
		}
		i := slices.IndexFunc(combos, func(cb Combination) bool { return cb.Key() == s.Combination })
		switch {
		case a.Step > 0 && i >= len(combos)-1:
			i = 0
		case a.Step > 0:
			i++
		case i <= 0:
			i = len(combos) - 1
		default:
			i--
		}
		s.Combination = combos[i].Key()
		fitLanguage(c, &s)

	case AppendMessage:
		i := slices.IndexFunc(s.Conversations, func(cv Conversation) bool { return cv.ID == s.CurrentConversation })
		if i < 0 {
			return s, ErrConversationNotFound
		}
		s.Conversations[i].Messages = append(s.Conversations[i].Messages, a.Message)
		s.Conversations[i].LastUpdated = a.Message.Timestamp

	case NewConversation:
		conv := Conversation{
			ID:          a.ID,
			Name:        fmt.Sprintf("New conversation %d", len(s.Conversations)+1),
			Messages:    []Message{greeting(a.At)},
			LastUpdated: a.At,
		}
		s.Conversations = append([]Conversation{conv}, s.Conversations...)
		s.CurrentConversation = conv.ID
		clearContent(&s)

	case SwitchConversation:
		if !slices.ContainsFunc(s.Conversations, func(cv Conversation) bool { return cv.ID == a.ID }) {
			return s, ErrConversationNotFound
		}
		s.CurrentConversation = a.ID

	case DeleteConversation:
		if len(s.Conversations) <= 1 {
			return s, ErrLastConversation
		}
		i := slices.IndexFunc(s.Conversations, func(cv Conversation) bool { return cv.ID == a.ID })
		if i < 0 {
			return s, ErrConversationNotFound
		}
		s.Conversations = slices.Delete(s.Conversations, i, i+1)
		if s.CurrentConversation == a.ID {
			s.CurrentConversation = s.Conversations[0].ID
		}

	case ClearContent:
		clearContent(&s)

	case CreateVariant:
		if s.Content == nil {
			return s, ErrNoContent
		}
		base := *s.Content
		siblings := 0
		for _, v := range s.Variants {
			if v.Asset == base.ContentType && v.Country == base.Country {
				siblings++
			}
		}
		n := siblings + 2
		v := Variant{
			ID:          fmt.Sprintf("%s-%s%s%d", base.ContentType, base.Country, variantMarker, n),
			Asset:       base.ContentType,
			Country:     base.Country,
			AssetName:   assetName(c, base.ContentType),
			CountryName: c.CountryName(base.Country),
			Number:      n,
			Content:     base,
		}
		s.Variants = append(s.Variants, v)
		s.Combination = v.ID

	case AddToLibrary:
		if s.Content == nil {
			return s, ErrNoContent
		}
		items := []LibraryItem{libraryItem(c, "lib-"+s.Content.ID, *s.Content, a.At)}
		for _, v := range s.Variants {
			items = append(items, libraryItem(c, "lib-"+v.ID, v.Content, a.At))
		}
		for _, item := range items {
			if !slices.ContainsFunc(s.Library, func(l LibraryItem) bool { return l.ID == item.ID }) {
				s.Library = append(s.Library, item)
			}
		}

	case DeleteLibraryItem:
		i := slices.IndexFunc(s.Library, func(l LibraryItem) bool { return l.ID == a.ID })
		if i < 0 {
			return s, ErrLibraryItemNotFound
		}
		s.Library = slices.Delete(s.Library, i, i+1)

	case SetHighlight:
		d := s.Displayed()
		if d == nil {
			return s, ErrNoContent
		}
		s.Highlight = &Highlight{Span: a.Span, ContentID: d.ID, Until: a.Until}

	case Reset:
		s.Conversations = []Conversation{{
			ID:          a.ConversationID,
			Name:        "New conversation",
			Messages:    []Message{greeting(a.At)},
			LastUpdated: a.At,
		}}
		s.CurrentConversation = a.ConversationID
		s.Variants = nil
		clearContent(&s)
		s.Combination = ""
		normalize(c, &s)

	case setContent:
		content := a.Content
		s.Content = &content
		s.Generating = false
		s.Highlight = nil
		key := content.ContentType + "-" + content.Country
		if slices.ContainsFunc(s.Combinations(c), func(cb Combination) bool { return cb.Key() == key }) {
			s.Combination = key
		}

	case setBatch:
		s.Batch = slices.Clone(a.Items)
		s.Generating = false

	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
	return s, nil
}

// Target is the (asset, country) pair generation aims at: the selected
// combination when it is a base combination, else the first selections.
func (s State) Target() (asset, country string) {
	if v, ok := s.Variant(s.Combination); ok {
		return v.Asset, v.Country
	}
	for _, a := range s.Assets {
		for _, code := range s.Countries {
			if a+"-"+code == s.Combination {
				return a, code
			}
		}
	}
	return s.Asset(), s.Country()
}

func clearContent(s *State) {
	s.Content = nil
	s.Highlight = nil
	s.Batch = nil
	s.Generating = false
	if IsVariantKey(s.Combination) {
		s.Combination = ""
	}
}

// normalize keeps the combination and language consistent with the
// current selections.
func normalize(c *catalog.Catalog, s *State) {
	combos := s.Combinations(c)
	_, isVariant := s.Variant(s.Combination)
	valid := isVariant || slices.ContainsFunc(combos, func(cb Combination) bool { return cb.Key() == s.Combination })
	if !valid {
		s.Combination = ""
		if len(combos) > 0 {
			s.Combination = combos[0].Key()
		}
	}
	fitLanguage(c, s)
}

func fitLanguage(c *catalog.Catalog, s *State) {
	_, country := s.Target()
	langs := c.LanguagesFor(country)
	if !slices.Contains(langs, s.Language) && len(langs) > 0 {
		s.Language = langs[0]
	}
}

func assetName(c *catalog.Catalog, id string) string {
	if ct, ok := c.ContentType(id); ok {
		return ct.Name
	}
	return id
}

func libraryItem(c *catalog.Catalog, id string, content GeneratedContent, at time.Time) LibraryItem {
	return LibraryItem{
		ID:            id,
		Title:         content.Prompt,
		Country:       content.Country,
		CountryName:   c.CountryName(content.Country),
		AssetType:     content.ContentType,
		AssetTypeName: assetName(c, content.ContentType),
		Language:      content.Language,
		Content:       content,
		Timestamp:     at,
	}
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Ticket identifies one asynchronous request. Only the newest ticket may
// commit.
type Ticket struct {
	epoch uint64
}

// Store owns a session's state. Every change goes through Dispatch or
// Commit.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	state   State
	epoch   uint64
}

// NewStore creates a store holding initial.
func NewStore(c *catalog.Catalog, initial State) *Store {
	if c == nil {
		c = catalog.Default()
	}
	normalize(c, &initial)
	return &Store{catalog: c, state: initial}
}

// State returns a snapshot that callers may keep.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies a. On error the state is unchanged. Actions that drop
// the current content also invalidate pending requests.
func (s *Store) Dispatch(a Action) error {
	switch a.(type) {
	case setContent, setBatch:
		return fmt.Errorf("%T must be committed with a ticket", a)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.catalog, s.state, a)
	if err != nil {
		return err
	}
	switch a.(type) {
	case NewConversation, ClearContent, Reset:
		s.epoch++
	}
	s.state = next
	return nil
}

// Begin starts a request, superseding any request still in flight.
func (s *Store) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state.Generating = true
	return Ticket{epoch: s.epoch}
}

// Commit stores content if t is still the newest ticket.
func (s *Store) Commit(t Ticket, content GeneratedContent) error {
	return s.commit(t, setContent{Content: content})
}

// CommitBatch stores batch results if t is still the newest ticket.
func (s *Store) CommitBatch(t Ticket, items []GeneratedContent) error {
	return s.commit(t, setBatch{Items: items})
}

// Abandon clears the generating flag for a failed request if t is current.
func (s *Store) Abandon(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.epoch == s.epoch {
		s.state.Generating = false
	}
}

func (s *Store) commit(t Ticket, a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.epoch != s.epoch {
		return ErrStaleResult
	}
	next, err := Reduce(s.catalog, s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}
