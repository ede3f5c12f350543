package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nleiva/contentscale/internal/assess"
	"github.com/nleiva/contentscale/internal/attach"
	"github.com/nleiva/contentscale/internal/content"
	"github.com/nleiva/contentscale/internal/excerpt"
	"github.com/nleiva/contentscale/internal/intent"
	"github.com/nleiva/contentscale/pkg/backend"
)

// Session is one user's workspace: conversations, generated content,
// variants and library.
type Session struct {
	ID       string
	svc      *Service
	store    *Store
	activity *Activity
}

// Reply is the outcome of one chat message.
type Reply struct {
	Decision intent.Decision
	Message  Message
	// Content is set when the message produced new content.
	Content *GeneratedContent
}

// Assessment bundles every derived view of the displayed content.
type Assessment struct {
	Report   assess.Report
	Guidance assess.Guidance
	Image    content.ImageIdea
	Keywords []string

	// ImageSpec lists the files accepted for the content type's imagery.
	ImageSpec attach.AssetSpec
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	return s.store.State()
}

// Activity returns the session counters.
func (s *Session) Activity() ActivitySummary {
	return s.activity.Summary()
}

func (s *Session) message(role backend.Role, text string) Message {
	return Message{ID: uuid.NewString(), Role: role, Content: text, Timestamp: s.svc.now()}
}

// SendMessage runs the chat flow: questions are answered by the analyst
// against the displayed content; instructions get an acknowledgement and
// then new or modified content built from every user message so far.
func (s *Session) SendMessage(ctx context.Context, text string, att *attach.Attachment) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" && att == nil {
		return Reply{}, NewValidationError("message", text, "message is required")
	}

	if att != nil {
		extracted, err := s.extract(ctx, *att)
		if err != nil {
			return Reply{}, err
		}
		if text == "" {
			text = extracted
		} else {
			text = text + "\n\n" + extracted
		}
	}

	if err := s.store.Dispatch(AppendMessage{Message: s.message(backend.RoleUser, text)}); err != nil {
		return Reply{}, NewSessionError(s.ID, "append message", err)
	}

	st := s.store.State()
	prompts := st.Current().UserMessages()
	decision := intent.Explain(text, len(prompts) == 1)
	s.activity.Intent(decision)
	slog.Info("message classified", "session", s.ID, "intent", decision.Intent, "rule", decision.Rule)

	if decision.Intent == intent.Question {
		var shown string
		if d := st.Displayed(); d != nil {
			shown = d.Content
		}
		msg := s.message(backend.RoleAssistant, s.svc.analyst.Answer(ctx, text, shown))
		if err := s.store.Dispatch(AppendMessage{Message: msg}); err != nil {
			return Reply{}, NewSessionError(s.ID, "append message", err)
		}
		return Reply{Decision: decision, Message: msg}, nil
	}

	if err := sleep(ctx, s.svc.replyDelay); err != nil {
		return Reply{}, err
	}

	asset, country := st.Target()
	chatName := s.svc.catalog.ChatName(asset)
	followUp := len(prompts) > 1
	var ack string
	if followUp {
		ack = fmt.Sprintf("I've regenerated the %s content incorporating your request: \"%s\". The updated content is now displayed!", chatName, text)
	} else {
		ack = fmt.Sprintf("Great! I'll create %s content about \"%s\" for the %s market. Check the content area on the right to see the generated content!",
			chatName, text, s.svc.catalog.CountryName(country))
	}
	msg := s.message(backend.RoleAssistant, ack)
	if err := s.store.Dispatch(AppendMessage{Message: msg}); err != nil {
		return Reply{}, NewSessionError(s.ID, "append message", err)
	}

	reply := Reply{Decision: decision, Message: msg}
	prompt := strings.Join(prompts, ". ")

	var (
		generated GeneratedContent
		err       error
	)
	prev := st.Content
	if followUp && prev != nil && prev.Country == country && prev.ContentType == asset {
		if modified, ok := s.svc.synth.Modify(prev.Content, text, country, asset); ok {
			next := *prev
			next.Prompt = prompt
			generated, err = s.produce(ctx, EventModification, next, func(context.Context) string { return modified })
			return s.finish(reply, generated, err)
		}
	}
	generated, err = s.Generate(ctx, prompt, country, asset, st.Language)
	return s.finish(reply, generated, err)
}

func (s *Session) finish(reply Reply, generated GeneratedContent, err error) (Reply, error) {
	if errors.Is(err, ErrStaleResult) {
		return reply, nil
	}
	if err != nil {
		return reply, err
	}
	reply.Content = &generated
	return reply, nil
}

func (s *Session) extract(ctx context.Context, att attach.Attachment) (string, error) {
	if err := attach.Validate(att.Name, att.Mime, int64(len(att.Data))); err != nil {
		return "", &ValidationError{Field: "attachment", Value: att.Name, Reason: err.Error(), Cause: err}
	}
	start := time.Now()
	text, err := s.svc.extractor.Extract(ctx, att)
	s.activity.Timed(EventAttachment, start, err)
	return text, err
}

// Generate synthesizes fresh content and makes it the main content unless a
// newer request started meanwhile, in which case it returns ErrStaleResult.
func (s *Session) Generate(ctx context.Context, prompt, country, asset, language string) (GeneratedContent, error) {
	base := GeneratedContent{Prompt: prompt, Country: country, ContentType: asset, Language: language}
	return s.produce(ctx, EventGeneration, base, func(ctx context.Context) string {
		return s.svc.synth.Synthesize(ctx, content.Request{
			Topic:       prompt,
			Country:     country,
			ContentType: asset,
			Language:    language,
		})
	})
}

func (s *Session) produce(ctx context.Context, kind EventKind, base GeneratedContent, render func(context.Context) string) (GeneratedContent, error) {
	ticket := s.store.Begin()
	start := time.Now()

	if err := sleep(ctx, s.svc.generationDelay); err != nil {
		s.store.Abandon(ticket)
		s.activity.Timed(kind, start, err)
		return GeneratedContent{}, err
	}

	base.ID = uuid.NewString()
	base.Content = render(ctx)
	base.Timestamp = s.svc.now()

	if err := s.store.Commit(ticket, base); err != nil {
		if errors.Is(err, ErrStaleResult) {
			s.activity.Record(ActivityEvent{Kind: EventStale, Success: true})
			slog.Info("discarding stale result", "session", s.ID, "country", base.Country, "type", base.ContentType)
		}
		return GeneratedContent{}, err
	}
	s.activity.Timed(kind, start, nil)
	slog.Info("content generated", "session", s.ID, "kind", kind, "country", base.Country,
		"type", base.ContentType, "language", base.Language, "elapsed", time.Since(start))
	return base, nil
}

// refresh regenerates the main content when the target or language no
// longer matches it. Variants are never regenerated.
func (s *Session) refresh(ctx context.Context) (*GeneratedContent, error) {
	st := s.store.State()
	if st.Content == nil || IsVariantKey(st.Combination) {
		return st.Displayed(), nil
	}
	asset, country := st.Target()
	c := st.Content
	if c.Country == country && c.ContentType == asset && c.Language == st.Language {
		return c, nil
	}
	generated, err := s.Generate(ctx, c.Prompt, country, asset, st.Language)
	if errors.Is(err, ErrStaleResult) {
		return s.store.State().Displayed(), nil
	}
	if err != nil {
		return nil, err
	}
	return &generated, nil
}

func (s *Session) dispatchAndRefresh(ctx context.Context, a Action) (*GeneratedContent, error) {
	if err := s.store.Dispatch(a); err != nil {
		return nil, err
	}
	return s.refresh(ctx)
}

// SelectCountries replaces the selected markets.
func (s *Session) SelectCountries(ctx context.Context, codes []string) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, SelectCountries{Codes: codes})
}

// SelectAssets replaces the selected content types.
func (s *Session) SelectAssets(ctx context.Context, ids []string) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, SelectAssets{IDs: ids})
}

// UpdateSelection replaces markets and content types together. Both lists
// are validated before anything changes, and the content is refreshed once.
func (s *Session) UpdateSelection(ctx context.Context, codes, ids []string) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, UpdateSelection{Codes: codes, IDs: ids})
}

// SetLanguage switches the output language of the current target.
func (s *Session) SetLanguage(ctx context.Context, language string) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, SetLanguage{Language: language})
}

// SelectCombination shows a combination or a variant.
func (s *Session) SelectCombination(ctx context.Context, key string) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, SelectCombination{Key: key})
}

// NextCombination cycles forward through the combinations.
func (s *Session) NextCombination(ctx context.Context) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, CycleCombination{Step: 1})
}

// PrevCombination cycles backward through the combinations.
func (s *Session) PrevCombination(ctx context.Context) (*GeneratedContent, error) {
	return s.dispatchAndRefresh(ctx, CycleCombination{Step: -1})
}

// CreateVariant saves a copy of the main content and selects it.
func (s *Session) CreateVariant() (Variant, error) {
	if err := s.store.Dispatch(CreateVariant{}); err != nil {
		return Variant{}, err
	}
	st := s.store.State()
	v, _ := st.Variant(st.Combination)
	slog.Info("variant created", "session", s.ID, "variant", v.ID)
	return v, nil
}

// AddToLibrary stores the main content and every variant. It returns the
// number of new items.
func (s *Session) AddToLibrary() (int, error) {
	before := len(s.store.State().Library)
	if err := s.store.Dispatch(AddToLibrary{At: s.svc.now()}); err != nil {
		return 0, err
	}
	added := len(s.store.State().Library) - before
	slog.Info("library updated", "session", s.ID, "added", added)
	return added, nil
}

// DeleteLibraryItem removes one library entry.
func (s *Session) DeleteLibraryItem(id string) error {
	return s.store.Dispatch(DeleteLibraryItem{ID: id})
}

// NewConversation starts a conversation and clears the content area.
func (s *Session) NewConversation() (Conversation, error) {
	if err := s.store.Dispatch(NewConversation{ID: uuid.NewString(), At: s.svc.now()}); err != nil {
		return Conversation{}, err
	}
	return s.store.State().Current(), nil
}

// SwitchConversation selects another conversation.
func (s *Session) SwitchConversation(id string) error {
	return s.store.Dispatch(SwitchConversation{ID: id})
}

// DeleteConversation removes a conversation. The last one cannot be deleted.
func (s *Session) DeleteConversation(id string) error {
	return s.store.Dispatch(DeleteConversation{ID: id})
}

// Reset drops every conversation, the content and its variants. The
// library survives.
func (s *Session) Reset() error {
	return s.store.Dispatch(Reset{ConversationID: uuid.NewString(), At: s.svc.now()})
}

// Highlight marks the first occurrence of needle in the displayed content
// for HighlightDuration. found is false when nothing matched.
func (s *Session) Highlight(needle string) (span excerpt.Span, found bool, err error) {
	d := s.store.State().Displayed()
	if d == nil {
		return excerpt.Span{}, false, ErrNoContent
	}
	span, found = excerpt.Locate(needle, d.Content)
	if !found {
		return excerpt.Span{}, false, nil
	}
	if err := s.store.Dispatch(SetHighlight{Span: span, Until: s.svc.now().Add(HighlightDuration)}); err != nil {
		return excerpt.Span{}, false, err
	}
	return span, true, nil
}

// TranslateSentence translates a sentence into English for hover display.
func (s *Session) TranslateSentence(ctx context.Context, sentence string) string {
	start := time.Now()
	out := s.svc.translator.Translate(ctx, sentence, "en")
	s.activity.Timed(EventTranslation, start, nil)
	return out
}

// Assess scores the displayed content.
func (s *Session) Assess() (Assessment, error) {
	d := s.store.State().Displayed()
	if d == nil {
		return Assessment{}, ErrNoContent
	}
	return Assessment{
		Report:   assess.Assess(d.Content, d.Country),
		Guidance: assess.FauxPas(d.Content, d.Country),
		Image:    content.ImageSuggestion(d.Prompt, d.Content),
		Keywords: content.Keywords(d.Content, d.Prompt),

		ImageSpec: attach.SpecFor(attach.KindFor(d.ContentType)),
	}, nil
}

// GenerateAll renders the current prompt for every combination
// concurrently. Each combination keeps the session language when its
// market offers it.
func (s *Session) GenerateAll(ctx context.Context) ([]GeneratedContent, error) {
	st := s.store.State()
	if st.Content == nil {
		return nil, ErrNoContent
	}
	combos := st.Combinations(s.svc.catalog)
	prompt := st.Content.Prompt

	ticket := s.store.Begin()
	start := time.Now()

	results := make([]GeneratedContent, len(combos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.svc.batchLimit)
	for i, cb := range combos {
		g.Go(func() error {
			if err := sleep(gctx, s.svc.generationDelay); err != nil {
				return err
			}
			language := st.Language
			if langs := s.svc.catalog.LanguagesFor(cb.Country); !slices.Contains(langs, language) {
				language = langs[0]
			}
			results[i] = GeneratedContent{
				ID:          uuid.NewString(),
				Prompt:      prompt,
				Country:     cb.Country,
				ContentType: cb.Asset,
				Language:    language,
				Content: s.svc.synth.Synthesize(gctx, content.Request{
					Topic:       prompt,
					Country:     cb.Country,
					ContentType: cb.Asset,
					Language:    language,
				}),
				Timestamp: s.svc.now(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.store.Abandon(ticket)
		return nil, fmt.Errorf("batch generation: %w", err)
	}
	if err := s.store.CommitBatch(ticket, results); err != nil {
		return nil, err
	}
	slog.Info("batch generated", "session", s.ID, "items", len(results), "elapsed", time.Since(start))
	return results, nil
}
