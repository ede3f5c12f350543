// Package tui is the interactive terminal front end.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nleiva/contentscale/internal/app"
)

// Model is the bubbletea model for one terminal session.
type Model struct {
	svc     *app.Service
	session *app.Session

	input   textinput.Model
	content viewport.Model

	width  int
	height int

	busy     bool
	notice   string
	failed   bool
	panel    string // overlay shown instead of the content, closed with esc
	quitting bool
}

// replyMsg carries the outcome of a chat message.
type replyMsg struct {
	reply app.Reply
	err   error
}

// doneMsg reports a finished command with an optional overlay.
type doneMsg struct {
	notice string
	panel  string
	err    error
}

// NewModel creates a model with a fresh session.
func NewModel(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "Describe the content you need, or /help"
	ti.CharLimit = 2000
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{PageUp: keys.PageUp, PageDown: keys.PageDown}

	return &Model{
		svc:     svc,
		session: svc.NewSession("tui"),
		input:   ti,
		content: vp,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case replyMsg:
		m.busy = false
		m.setNotice("", msg.err)
		m.refreshContent()
		return m, nil

	case doneMsg:
		m.busy = false
		m.setNotice(msg.notice, msg.err)
		if msg.err == nil && msg.panel != "" {
			m.panel = msg.panel
		}
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.content, cmd = m.content.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		if m.panel != "" {
			m.panel = ""
			m.refreshContent()
			return nil, true
		}
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Enter):
		return m.handleInput(), true

	case key.Matches(msg, keys.Next):
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.NextCombination(ctx)
			return doneMsg{err: err}
		}), true

	case key.Matches(msg, keys.Prev):
		return m.run(func(ctx context.Context) doneMsg {
			_, err := m.session.PrevCombination(ctx)
			return doneMsg{err: err}
		}), true
	}
	return nil, false
}

// handleInput dispatches slash commands and sends everything else to the
// chat flow.
func (m *Model) handleInput() tea.Cmd {
	input := strings.TrimSpace(m.input.Value())
	if input == "" || m.busy {
		return nil
	}
	m.input.Reset()

	if strings.HasPrefix(input, "/") {
		name, args := parseCommand(input)
		return m.command(name, args)
	}

	m.busy = true
	m.notice = "Thinking..."
	m.failed = false
	return func() tea.Msg {
		reply, err := m.session.SendMessage(context.Background(), input, nil)
		return replyMsg{reply: reply, err: err}
	}
}

// run executes fn off the UI goroutine.
func (m *Model) run(fn func(context.Context) doneMsg) tea.Cmd {
	m.busy = true
	return func() tea.Msg {
		return fn(context.Background())
	}
}

func (m *Model) setNotice(notice string, err error) {
	m.notice = notice
	m.failed = err != nil
	if err != nil {
		m.notice = "Error: " + err.Error()
	}
}

func (m *Model) resize() {
	w, h := m.contentSize()
	m.content.Width = w
	m.content.Height = h
	m.input.Width = m.chatWidth() - 6
	m.refreshContent()
}

// refreshContent loads the displayed content or the open panel into the
// viewport.
func (m *Model) refreshContent() {
	if m.panel != "" {
		m.content.SetContent(m.panel)
		m.content.GotoTop()
		return
	}
	st := m.session.State()
	shown := st.Displayed()
	if shown == nil {
		m.content.SetContent(styleSubtitle.Render("Your generated content will appear here."))
		return
	}
	m.content.SetContent(wrap(shown.Content, m.content.Width))
	m.content.GotoTop()
}
