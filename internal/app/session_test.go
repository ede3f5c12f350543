package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nleiva/contentscale/internal/analyst"
	"github.com/nleiva/contentscale/internal/attach"
	"github.com/nleiva/contentscale/internal/intent"
	"github.com/nleiva/contentscale/internal/translate"
	"github.com/nleiva/contentscale/pkg/backend"
)

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	svc := NewService(cfg)
	svc.now = func() time.Time { return epoch }
	return svc.NewSession("test")
}

func send(t *testing.T, s *Session, text string) Reply {
	t.Helper()
	r, err := s.SendMessage(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("SendMessage(%q): %v", text, err)
	}
	return r
}

func TestSendMessageValidation(t *testing.T) {
	s := newTestSession(t, Config{})
	_, err := s.SendMessage(context.Background(), "   ", nil)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "message" {
		t.Errorf("empty message = %v", err)
	}
}

func TestFirstInstructionGenerates(t *testing.T) {
	s := newTestSession(t, Config{})
	r := send(t, s, "Write a blog post about green tea")

	if r.Decision.Intent != intent.Instruction || r.Decision.Rule != intent.RuleGenerationVerb {
		t.Errorf("decision = %+v", r.Decision)
	}
	want := `Great! I'll create blog post content about "Write a blog post about green tea" for the United States market.`
	if !strings.HasPrefix(r.Message.Content, want) {
		t.Errorf("ack = %q", r.Message.Content)
	}
	if r.Content == nil {
		t.Fatal("expected generated content")
	}
	if r.Content.Country != "US" || r.Content.ContentType != "blog-post" || r.Content.Prompt != "Write a blog post about green tea" {
		t.Errorf("content = %+v", r.Content)
	}
	if !strings.Contains(r.Content.Content, "A United States Perspective") {
		t.Errorf("unexpected body: %q", r.Content.Content)
	}

	msgs := s.State().Current().Messages
	if len(msgs) != 3 || msgs[1].Role != backend.RoleUser || msgs[2].Role != backend.RoleAssistant {
		t.Errorf("conversation = %+v", msgs)
	}
	if got := s.Activity(); got.Instructions != 1 || got.Generations != 1 {
		t.Errorf("activity = %+v", got)
	}
}

func TestQuestionsUseAnalyst(t *testing.T) {
	s := newTestSession(t, Config{})
	r := send(t, s, "Who would enjoy this?")

	if r.Decision.Intent != intent.Question {
		t.Fatalf("decision = %+v", r.Decision)
	}
	if r.Content != nil || s.State().Content != nil {
		t.Errorf("questions must not generate content")
	}
	if r.Message.Content != analyst.MockAnswer("Who would enjoy this?") {
		t.Errorf("answer = %q", r.Message.Content)
	}
}

func TestFirstModificationIsQuestion(t *testing.T) {
	s := newTestSession(t, Config{})
	r := send(t, s, "add more detail")
	if r.Decision.Intent != intent.Question || r.Decision.Rule != intent.RuleModification {
		t.Errorf("decision = %+v", r.Decision)
	}
	if s.State().Content != nil {
		t.Errorf("no content expected")
	}
}

func TestFollowUpModifies(t *testing.T) {
	s := newTestSession(t, Config{})
	first := send(t, s, "Write a blog post about green tea")
	r := send(t, s, "make it shorter")

	if r.Decision.Intent != intent.Instruction {
		t.Fatalf("decision = %+v", r.Decision)
	}
	if !strings.HasPrefix(r.Message.Content, `I've regenerated the blog post content incorporating your request: "make it shorter".`) {
		t.Errorf("ack = %q", r.Message.Content)
	}
	if r.Content == nil {
		t.Fatal("expected modified content")
	}
	if r.Content.ID == first.Content.ID {
		t.Errorf("modification must produce a new content ID")
	}
	if got, was := strings.Count(r.Content.Content, "\n"), strings.Count(first.Content.Content, "\n"); got > was {
		t.Errorf("shorter grew from %d to %d lines", was, got)
	}
	if r.Content.Prompt != "Write a blog post about green tea. make it shorter" {
		t.Errorf("prompt = %q", r.Content.Prompt)
	}
	if got := s.Activity().Modifications; got != 1 {
		t.Errorf("modifications = %d", got)
	}
}

func TestFollowUpWithoutRuleRegenerates(t *testing.T) {
	s := newTestSession(t, Config{})
	send(t, s, "Write a blog post about green tea")
	r := send(t, s, "Create an email about matcha")

	if r.Content == nil {
		t.Fatal("expected regenerated content")
	}
	if r.Content.Prompt != "Write a blog post about green tea. Create an email about matcha" {
		t.Errorf("prompt = %q", r.Content.Prompt)
	}
	if got := s.Activity().Generations; got != 2 {
		t.Errorf("generations = %d", got)
	}
}

func TestQuestionAfterContentSeesIt(t *testing.T) {
	asker := &recordingAsker{reply: "It reads well."}
	s := newTestSession(t, Config{Analyst: analyst.New(asker, time.Second)})
	first := send(t, s, "Write a blog post about green tea")
	r := send(t, s, "How does it sound?")

	if r.Message.Content != "It reads well." {
		t.Errorf("answer = %q", r.Message.Content)
	}
	if !strings.Contains(asker.user, first.Content.Content) {
		t.Errorf("analyst did not receive the displayed content")
	}
}

type recordingAsker struct {
	reply string
	user  string
}

func (a *recordingAsker) Ask(_ context.Context, _, user string, _ float64, _ int) (string, error) {
	a.user = user
	return a.reply, nil
}

func TestSelectionRegenerates(t *testing.T) {
	s := newTestSession(t, Config{})
	ctx := context.Background()

	if got, err := s.SelectCountries(ctx, []string{"DE"}); err != nil || got != nil {
		t.Fatalf("selection without content = %+v, %v", got, err)
	}

	send(t, s, "Write a blog post about green tea")
	got, err := s.SelectCountries(ctx, []string{"JP"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Country != "JP" || got.Language != "Japanese" {
		t.Errorf("regenerated = %s/%s", got.Country, got.Language)
	}

	got, err = s.SetLanguage(ctx, "English")
	if err != nil {
		t.Fatal(err)
	}
	if got.Language != "English" || !strings.Contains(got.Content, "A Japan Perspective") {
		t.Errorf("language switch = %s %q", got.Language, got.Content[:40])
	}

	if _, err := s.SelectAssets(ctx, []string{"email"}); err != nil {
		t.Fatal(err)
	}
	if st := s.State(); st.Content.ContentType != "email" {
		t.Errorf("asset switch did not regenerate: %+v", st.Content)
	}
}

func TestUpdateSelection(t *testing.T) {
	s := newTestSession(t, Config{})
	ctx := context.Background()
	send(t, s, "Write a blog post about green tea")
	before := s.Activity().Generations

	_, err := s.UpdateSelection(ctx, []string{"DE"}, []string{"podcast"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "asset" {
		t.Fatalf("UpdateSelection = %v, want asset ValidationError", err)
	}
	if st := s.State(); st.Countries[0] != "US" || st.Content.Country != "US" {
		t.Errorf("invalid asset must leave markets alone: %v", st.Countries)
	}

	got, err := s.UpdateSelection(ctx, []string{"DE"}, []string{"email"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Country != "DE" || got.ContentType != "email" || got.Language != "German" {
		t.Errorf("regenerated = %s/%s/%s", got.Country, got.ContentType, got.Language)
	}
	if n := s.Activity().Generations - before; n != 1 {
		t.Errorf("generations = %d, want 1", n)
	}
}

func TestCombinationNavigation(t *testing.T) {
	s := newTestSession(t, Config{})
	ctx := context.Background()
	if _, err := s.SelectCountries(ctx, []string{"US", "FR"}); err != nil {
		t.Fatal(err)
	}
	send(t, s, "Write a blog post about green tea")

	got, err := s.NextCombination(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Country != "FR" {
		t.Errorf("next = %+v", got)
	}
	got, err = s.PrevCombination(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Country != "US" {
		t.Errorf("prev = %+v", got)
	}

	v, err := s.CreateVariant()
	if err != nil {
		t.Fatal(err)
	}
	if v.ID != "blog-post-US-var-2" || v.Number != 2 {
		t.Errorf("variant = %+v", v)
	}
	shown, err := s.SelectCombination(ctx, v.ID)
	if err != nil {
		t.Fatal(err)
	}
	if shown.ID != v.Content.ID {
		t.Errorf("selecting a variant should show it unchanged")
	}
}

func TestStaleGenerationIsDiscarded(t *testing.T) {
	s := newTestSession(t, Config{GenerationDelay: 200 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(context.Background(), "green tea", "US", "blog-post", "English (US)")
		done <- err
	}()

	deadline := time.Now().Add(time.Second)
	for !s.State().Generating {
		if time.Now().After(deadline) {
			t.Fatal("generation never started")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("Generate = %v, want ErrStaleResult", err)
	}
	if s.State().Content != nil {
		t.Errorf("stale result was committed")
	}
	if got := s.Activity().StaleResults; got != 1 {
		t.Errorf("stale results = %d", got)
	}
}

func TestGenerateCancelled(t *testing.T) {
	s := newTestSession(t, Config{GenerationDelay: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Generate(ctx, "tea", "US", "blog-post", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate = %v", err)
	}
	if s.State().Generating {
		t.Errorf("cancelled request left the generating flag set")
	}
}

func TestGenerateAll(t *testing.T) {
	s := newTestSession(t, Config{})
	ctx := context.Background()

	if _, err := s.GenerateAll(ctx); !errors.Is(err, ErrNoContent) {
		t.Fatalf("GenerateAll without content = %v", err)
	}

	if _, err := s.SelectCountries(ctx, []string{"US", "DE"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SelectAssets(ctx, []string{"blog-post", "email"}); err != nil {
		t.Fatal(err)
	}
	send(t, s, "Write about green tea")

	items, err := s.GenerateAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}
	want := []struct{ asset, country, language string }{
		{"blog-post", "US", "English (US)"},
		{"blog-post", "DE", "German"},
		{"email", "US", "English (US)"},
		{"email", "DE", "German"},
	}
	for i, w := range want {
		it := items[i]
		if it.ContentType != w.asset || it.Country != w.country || it.Language != w.language || it.Content == "" {
			t.Errorf("item %d = %s/%s/%s", i, it.ContentType, it.Country, it.Language)
		}
	}
	if got := len(s.State().Batch); got != 4 {
		t.Errorf("batch not stored: %d", got)
	}
}

func TestAttachments(t *testing.T) {
	s := newTestSession(t, Config{})
	ctx := context.Background()

	_, err := s.SendMessage(ctx, "", &attach.Attachment{Name: "photo.png", Mime: "image/png"})
	if !errors.Is(err, attach.ErrUnsupportedAttachment) {
		t.Fatalf("png attachment = %v", err)
	}

	r, err := s.SendMessage(ctx, "Write a blog post from this brief", &attach.Attachment{Name: "brief.docx", Mime: attach.MimeDOCX})
	if err != nil {
		t.Fatal(err)
	}
	msgs := s.State().Current().Messages
	user := msgs[len(msgs)-2]
	if !strings.HasPrefix(user.Content, "Write a blog post from this brief\n\n[Attached file: brief.docx]") {
		t.Errorf("user message = %q", user.Content)
	}
	if r.Content == nil {
		t.Errorf("instruction with attachment should generate")
	}
	if got := s.Activity().Attachments; got != 1 {
		t.Errorf("attachments = %d", got)
	}
}

func TestHighlightAndAssess(t *testing.T) {
	s := newTestSession(t, Config{})
	if _, _, err := s.Highlight("tea"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("highlight without content = %v", err)
	}
	if _, err := s.Assess(); !errors.Is(err, ErrNoContent) {
		t.Fatalf("assess without content = %v", err)
	}

	r := send(t, s, "Write a blog post about green tea")

	span, found, err := s.Highlight("united states perspective")
	if err != nil || !found {
		t.Fatalf("Highlight = %v %v", found, err)
	}
	if got := r.Content.Content[span.Start:span.End]; got != "United States Perspective" {
		t.Errorf("span covers %q", got)
	}
	if _, ok := s.State().ActiveHighlight(epoch.Add(time.Second)); !ok {
		t.Errorf("highlight should be active")
	}
	if _, found, _ := s.Highlight("zzzz qqqq"); found {
		t.Errorf("nonsense should not be found")
	}

	a, err := s.Assess()
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Report.Metrics) != 6 || a.Guidance.Country != "US" || len(a.Keywords) == 0 || a.Image.Title == "" || a.ImageSpec.Kind != attach.AssetBlog {
		t.Errorf("assessment = %+v", a)
	}
}

func TestLibraryAndConversations(t *testing.T) {
	s := newTestSession(t, Config{})
	if _, err := s.AddToLibrary(); !errors.Is(err, ErrNoContent) {
		t.Fatalf("AddToLibrary without content = %v", err)
	}
	send(t, s, "Write a blog post about green tea")
	if _, err := s.CreateVariant(); err != nil {
		t.Fatal(err)
	}
	n, err := s.AddToLibrary()
	if err != nil || n != 2 {
		t.Fatalf("AddToLibrary = %d, %v", n, err)
	}
	lib := s.State().Library
	if err := s.DeleteLibraryItem(lib[0].ID); err != nil {
		t.Fatal(err)
	}

	conv, err := s.NewConversation()
	if err != nil {
		t.Fatal(err)
	}
	if conv.Name != "New conversation 4" || s.State().Content != nil {
		t.Errorf("new conversation = %+v", conv)
	}
	if err := s.SwitchConversation("2"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteConversation(conv.ID); err != nil {
		t.Fatal(err)
	}
	if got := s.State().CurrentConversation; got != "2" {
		t.Errorf("current = %q", got)
	}
}

func TestTranslateSentence(t *testing.T) {
	s := newTestSession(t, Config{Translator: translate.New(translate.Config{})})
	got := s.TranslateSentence(context.Background(), "Hallo Welt.")
	if got != translate.MockPrefix+"Hallo Welt." {
		t.Errorf("TranslateSentence = %q", got)
	}
	if n := s.Activity().Translations; n != 1 {
		t.Errorf("translations = %d", n)
	}
}

func TestActivitySink(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(t, Config{ActivitySink: &buf})
	send(t, s, "Write a blog post about green tea")

	var kinds []EventKind
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var ev ActivityEvent
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		if ev.SessionID != "test" {
			t.Errorf("session id = %q", ev.SessionID)
		}
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) != 2 || kinds[0] != EventInstruction || kinds[1] != EventGeneration {
		t.Errorf("events = %v", kinds)
	}
	if rules := s.Activity().Rules; rules[string(intent.RuleGenerationVerb)] != 1 {
		t.Errorf("rules = %v", rules)
	}
}
