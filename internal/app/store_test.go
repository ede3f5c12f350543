package app

import (
	"errors"
	"testing"
	"time"

	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/excerpt"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(catalog.Default(), NewState(epoch))
}

func sample(id, country, asset string) GeneratedContent {
	return GeneratedContent{
		ID:          id,
		Prompt:      "green tea",
		Country:     country,
		ContentType: asset,
		Language:    catalog.DefaultLanguage,
		Content:     "## Green Tea: A Perspective\n\nGreen tea is calming.",
		Timestamp:   epoch,
	}
}

func commit(t *testing.T, s *Store, c GeneratedContent) {
	t.Helper()
	if err := s.Commit(s.Begin(), c); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func TestNewState(t *testing.T) {
	st := newTestStore(t).State()

	if len(st.Conversations) != 3 || st.CurrentConversation != "1" {
		t.Fatalf("conversations = %+v, current %q", st.Conversations, st.CurrentConversation)
	}
	if got := st.Current().Name; got != "Pinecore health blog" {
		t.Errorf("current conversation = %q", got)
	}
	if msgs := st.Current().Messages; len(msgs) != 1 || msgs[0].Content != initialGreeting {
		t.Errorf("expected greeting only, got %+v", msgs)
	}
	if st.Combination != "blog-post-US" {
		t.Errorf("combination = %q, want blog-post-US", st.Combination)
	}
	if st.Language != catalog.DefaultLanguage {
		t.Errorf("language = %q", st.Language)
	}
	if st.Content != nil || st.Generating {
		t.Errorf("fresh state should have no content")
	}
}

func TestReduceLeavesInputUntouched(t *testing.T) {
	c := catalog.Default()
	before := NewState(epoch)
	after, err := Reduce(c, before, AppendMessage{Message: Message{ID: "m", Content: "hi", Timestamp: epoch}})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(before.Current().Messages) != 1 {
		t.Errorf("input state was modified")
	}
	if len(after.Current().Messages) != 2 {
		t.Errorf("message not appended")
	}
}

func TestSelectionValidation(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		field  string
	}{
		{"unknown country", SelectCountries{Codes: []string{"US", "ZZ"}}, "country"},
		{"unknown asset", SelectAssets{IDs: []string{"podcast"}}, "asset"},
		{"disabled asset", SelectAssets{IDs: []string{"instagram"}}, "asset"},
		{"language not offered", SetLanguage{Language: "Japanese"}, "language"},
		{"combination not selected", SelectCombination{Key: "email-FR"}, "combination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.State()
			err := s.Dispatch(tt.action)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
			if after := s.State(); after.Combination != before.Combination || len(after.Countries) != len(before.Countries) {
				t.Errorf("state changed on error")
			}
		})
	}
}

func TestSelectionFollowsLanguage(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(SelectCountries{Codes: []string{"de", "de"}}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	st := s.State()
	if len(st.Countries) != 1 || st.Countries[0] != "DE" {
		t.Errorf("countries = %v, want [DE]", st.Countries)
	}
	if st.Combination != "blog-post-DE" {
		t.Errorf("combination = %q", st.Combination)
	}
	if st.Language != "German" {
		t.Errorf("language = %q, want German", st.Language)
	}

	if err := s.Dispatch(SetLanguage{Language: "English"}); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if got := s.State().Language; got != "English" {
		t.Errorf("language = %q", got)
	}
}

func TestCycleCombination(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(SelectCountries{Codes: []string{"US", "DE", "JP"}}); err != nil {
		t.Fatal(err)
	}

	var got []string
	for i := 0; i < 4; i++ {
		if err := s.Dispatch(CycleCombination{Step: 1}); err != nil {
			t.Fatal(err)
		}
		got = append(got, s.State().Combination)
	}
	want := []string{"blog-post-DE", "blog-post-JP", "blog-post-US", "blog-post-DE"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("next #%d = %q, want %q", i, got[i], want[i])
		}
	}

	if err := s.Dispatch(SelectCombination{Key: "blog-post-US"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Dispatch(CycleCombination{Step: -1}); err != nil {
		t.Fatal(err)
	}
	if got := s.State().Combination; got != "blog-post-JP" {
		t.Errorf("prev from first = %q, want blog-post-JP", got)
	}
}

func TestCycleSingleCombination(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(CycleCombination{Step: 1}); err != nil {
		t.Fatal(err)
	}
	if got := s.State().Combination; got != "blog-post-US" {
		t.Errorf("single combination should not move, got %q", got)
	}
}

func TestConversations(t *testing.T) {
	s := newTestStore(t)
	commit(t, s, sample("c1", "US", "blog-post"))

	if err := s.Dispatch(NewConversation{ID: "new", At: epoch}); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if st.Conversations[0].ID != "new" || st.Conversations[0].Name != "New conversation 4" {
		t.Errorf("new conversation not prepended: %+v", st.Conversations[0])
	}
	if st.CurrentConversation != "new" || st.Content != nil {
		t.Errorf("new conversation should be current with empty content")
	}

	if err := s.Dispatch(SwitchConversation{ID: "missing"}); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("switch to missing = %v", err)
	}

	if err := s.Dispatch(DeleteConversation{ID: "new"}); err != nil {
		t.Fatal(err)
	}
	if got := s.State().CurrentConversation; got != "1" {
		t.Errorf("after deleting current, current = %q, want 1", got)
	}

	for _, id := range []string{"2", "3"} {
		if err := s.Dispatch(DeleteConversation{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Dispatch(DeleteConversation{ID: "1"}); !errors.Is(err, ErrLastConversation) {
		t.Errorf("deleting last conversation = %v", err)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	commit(t, s, sample("c1", "US", "blog-post"))
	if err := s.Dispatch(CreateVariant{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Dispatch(AddToLibrary{At: epoch}); err != nil {
		t.Fatal(err)
	}

	if err := s.Dispatch(Reset{ConversationID: "fresh", At: epoch}); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if len(st.Conversations) != 1 || st.Conversations[0].Name != "New conversation" {
		t.Errorf("conversations = %+v", st.Conversations)
	}
	if st.Content != nil || len(st.Variants) != 0 {
		t.Errorf("content and variants should be cleared")
	}
	if len(st.Library) != 2 {
		t.Errorf("library should survive reset, got %d items", len(st.Library))
	}
	if st.Combination != "blog-post-US" {
		t.Errorf("combination = %q", st.Combination)
	}
}

func TestTickets(t *testing.T) {
	s := newTestStore(t)

	first := s.Begin()
	second := s.Begin()
	if !s.State().Generating {
		t.Errorf("Begin should mark the state as generating")
	}
	if err := s.Commit(first, sample("old", "US", "blog-post")); !errors.Is(err, ErrStaleResult) {
		t.Fatalf("stale commit = %v, want ErrStaleResult", err)
	}
	if err := s.Commit(second, sample("new", "US", "blog-post")); err != nil {
		t.Fatalf("current commit: %v", err)
	}
	st := s.State()
	if st.Content.ID != "new" || st.Generating {
		t.Errorf("content = %+v generating=%v", st.Content, st.Generating)
	}

	pending := s.Begin()
	if err := s.Dispatch(ClearContent{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Commit(pending, sample("late", "US", "blog-post")); !errors.Is(err, ErrStaleResult) {
		t.Errorf("commit after clear = %v, want ErrStaleResult", err)
	}
	if s.State().Content != nil {
		t.Errorf("stale result overwrote cleared content")
	}
}

func TestDispatchRejectsCommitActions(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(setContent{Content: sample("x", "US", "blog-post")}); err == nil {
		t.Errorf("setContent must require a ticket")
	}
}

func TestVariantsAndLibrary(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(CreateVariant{}); !errors.Is(err, ErrNoContent) {
		t.Fatalf("variant without content = %v", err)
	}
	commit(t, s, sample("c1", "US", "blog-post"))

	for _, want := range []string{"blog-post-US-var-2", "blog-post-US-var-3"} {
		if err := s.Dispatch(CreateVariant{}); err != nil {
			t.Fatal(err)
		}
		st := s.State()
		if st.Combination != want {
			t.Errorf("selected = %q, want %q", st.Combination, want)
		}
		if v, ok := st.Variant(want); !ok || v.AssetName != "Blog post" || v.CountryName != "United States" {
			t.Errorf("variant = %+v", v)
		}
	}

	replacement := sample("c2", "US", "blog-post")
	replacement.Content = "replaced"
	commit(t, s, replacement)
	st := s.State()
	if v, _ := st.Variant("blog-post-US-var-2"); v.Content.ID != "c1" || v.Content.Content == "replaced" {
		t.Errorf("variant should keep its own copy, got %+v", v.Content)
	}
	if st.Combination != "blog-post-US" {
		t.Errorf("new content should be selected, combination = %q", st.Combination)
	}

	if err := s.Dispatch(AddToLibrary{At: epoch}); err != nil {
		t.Fatal(err)
	}
	lib := s.State().Library
	if len(lib) != 3 {
		t.Fatalf("library has %d items, want 3", len(lib))
	}
	if lib[0].ID != "lib-c2" || lib[0].Title != "green tea" || lib[1].ID != "lib-blog-post-US-var-2" {
		t.Errorf("library = %+v", lib)
	}

	if err := s.Dispatch(AddToLibrary{At: epoch}); err != nil {
		t.Fatal(err)
	}
	if got := len(s.State().Library); got != 3 {
		t.Errorf("re-adding duplicated items: %d", got)
	}

	if err := s.Dispatch(DeleteLibraryItem{ID: "lib-c2"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Dispatch(DeleteLibraryItem{ID: "lib-c2"}); !errors.Is(err, ErrLibraryItemNotFound) {
		t.Errorf("second delete = %v", err)
	}
}

func TestDisplayedVariant(t *testing.T) {
	s := newTestStore(t)
	commit(t, s, sample("c1", "US", "blog-post"))
	if err := s.Dispatch(CreateVariant{}); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if d := st.Displayed(); d == nil || d.ID != "c1" {
		t.Errorf("displayed = %+v", d)
	}
	if asset, country := st.Target(); asset != "blog-post" || country != "US" {
		t.Errorf("target = %s %s", asset, country)
	}
}

func TestHighlightExpiry(t *testing.T) {
	s := newTestStore(t)
	if err := s.Dispatch(SetHighlight{Until: epoch}); !errors.Is(err, ErrNoContent) {
		t.Fatalf("highlight without content = %v", err)
	}
	commit(t, s, sample("c1", "US", "blog-post"))

	span := excerpt.Span{Start: 3, End: 12}
	if err := s.Dispatch(SetHighlight{Span: span, Until: epoch.Add(HighlightDuration)}); err != nil {
		t.Fatal(err)
	}
	st := s.State()
	if got, ok := st.ActiveHighlight(epoch.Add(time.Second)); !ok || got != span {
		t.Errorf("highlight inside window = %+v %v", got, ok)
	}
	if _, ok := st.ActiveHighlight(epoch.Add(HighlightDuration)); ok {
		t.Errorf("highlight should expire after %v", HighlightDuration)
	}

	commit(t, s, sample("c2", "US", "blog-post"))
	if _, ok := s.State().ActiveHighlight(epoch); ok {
		t.Errorf("new content should drop the highlight")
	}
}
