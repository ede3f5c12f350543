package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nleiva/contentscale/internal/app"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(app.NewService(app.Config{}))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// submit types text and presses enter, running the resulting command
// synchronously.
func submit(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	m.input.SetValue(text)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); ok {
		return cmd
	}
	m.Update(msg)
	return nil
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs []string
	}{
		{"/country US DE", "country", []string{"US", "DE"}},
		{"/LANG English (US)", "lang", []string{"English", "(US)"}},
		{"/score", "score", []string{}},
		{"/", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, args := parseCommand(tt.input)
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("parseCommand(%q) = %q %v", tt.input, name, args)
			}
		})
	}
}

func TestChatMessage(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "Write a blog post about green tea")

	if m.busy {
		t.Error("model still busy")
	}
	if m.session.State().Content == nil {
		t.Fatal("no content generated")
	}
	view := m.View()
	for _, want := range []string{"ContentScale", "You", "Great!", "Blog post - United States"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
}

func TestSelectionCommands(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "/country de")
	if got := m.session.State().Countries; len(got) != 1 || got[0] != "DE" {
		t.Errorf("countries = %v", got)
	}
	if m.notice != "Markets: DE" || m.failed {
		t.Errorf("notice = %q", m.notice)
	}

	submit(t, m, "/lang English")
	if got := m.session.State().Language; got != "English" {
		t.Errorf("language = %q", got)
	}

	submit(t, m, "/asset sms")
	if !m.failed || !strings.Contains(m.notice, "asset") {
		t.Errorf("disabled asset notice = %q", m.notice)
	}
}

func TestCommandErrors(t *testing.T) {
	m := newTestModel(t)

	submit(t, m, "/dance")
	if !m.failed || !strings.Contains(m.notice, "unknown command /dance") {
		t.Errorf("notice = %q", m.notice)
	}

	submit(t, m, "/score")
	if !m.failed || !strings.Contains(m.notice, app.ErrNoContent.Error()) {
		t.Errorf("notice = %q", m.notice)
	}

	submit(t, m, "/country")
	if !m.failed || !strings.Contains(m.notice, "/country US DE") {
		t.Errorf("usage = %q", m.notice)
	}
}

func TestContentCommands(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "Write a blog post about green tea")

	submit(t, m, "/score")
	if !strings.Contains(m.panel, "Content score") || !strings.Contains(m.panel, "Readability") {
		t.Errorf("score panel = %q", m.panel)
	}

	submit(t, m, "/variant")
	if !strings.Contains(m.notice, "Created variant 2") {
		t.Errorf("variant notice = %q", m.notice)
	}
	if !strings.Contains(m.View(), "Variant 2") {
		t.Errorf("variant tab missing")
	}

	submit(t, m, "/library add")
	if m.notice != "Added 2 item(s) to the library" {
		t.Errorf("library notice = %q", m.notice)
	}

	submit(t, m, "/find united states")
	if !strings.Contains(m.notice, `Found "United States"`) {
		t.Errorf("find notice = %q", m.notice)
	}

	submit(t, m, "/stats")
	if !strings.Contains(m.panel, "Generations") || !strings.Contains(m.panel, "generation_verb") {
		t.Errorf("stats panel = %q", m.panel)
	}

	submit(t, m, "/all")
	if !strings.Contains(m.notice, "Generated 1 combinations") {
		t.Errorf("all notice = %q", m.notice)
	}
}

func TestEscClosesPanelThenQuits(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "/help")
	if !strings.Contains(m.panel, "/country") {
		t.Fatalf("help panel = %q", m.panel)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil || m.panel != "" || m.quitting {
		t.Fatalf("esc should only close the panel")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil || !m.quitting {
		t.Fatalf("esc without a panel should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGoldenAndQuit(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "/golden")
	if m.input.Value() != app.GoldenPrompt {
		t.Errorf("input = %q", m.input.Value())
	}

	if cmd := submit(t, m, "/quit"); cmd == nil || !m.quitting {
		t.Error("/quit should quit")
	}
}

func TestNewAndReset(t *testing.T) {
	m := newTestModel(t)
	submit(t, m, "/new")
	if m.notice != "Started New conversation 4" {
		t.Errorf("notice = %q", m.notice)
	}
	submit(t, m, "/reset")
	if got := len(m.session.State().Conversations); got != 1 {
		t.Errorf("conversations after reset = %d", got)
	}
}
