package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nleiva/contentscale/internal/app"
	"github.com/nleiva/contentscale/pkg/backend"
)

const (
	minWidth      = 60
	headerHeight  = 3
	footerHeight  = 4
	chatShare     = 0.4
	maxTranscript = 40
)

func (m *Model) chatWidth() int {
	return int(float64(max(m.width, minWidth)) * chatShare)
}

func (m *Model) contentSize() (int, int) {
	w := max(m.width, minWidth) - m.chatWidth() - 4
	h := max(m.height-headerHeight-footerHeight-2, 5)
	return w, h
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.State()
	_, bodyHeight := m.contentSize()

	header := m.renderHeader(st)
	chat := styleBox.Width(m.chatWidth() - 2).Height(bodyHeight).Render(m.renderTranscript(st, bodyHeight))

	contentBox := styleBox
	if m.panel != "" {
		contentBox = styleActiveBox
	}
	content := contentBox.Render(m.renderTabs(st) + "\n" + m.content.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, chat, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m *Model) renderHeader(st app.State) string {
	c := m.svc.Catalog()
	var markets []string
	for _, code := range st.Countries {
		country := c.CountryOrFallback(code)
		markets = append(markets, country.Flag+" "+country.Name)
	}
	var assets []string
	for _, id := range st.Assets {
		assets = append(assets, c.DisplayName(id))
	}
	return styleLogo.Render("ContentScale") + "  " +
		styleSubtitle.Render(st.Current().Name) + "\n" +
		styleSubtitle.Render(fmt.Sprintf("Markets: %s  |  Assets: %s  |  Language: %s",
			strings.Join(markets, ", "), strings.Join(assets, ", "), st.Language))
}

func (m *Model) renderTranscript(st app.State, height int) string {
	width := m.chatWidth() - 4
	var lines []string
	msgs := st.Current().Messages
	if len(msgs) > maxTranscript {
		msgs = msgs[len(msgs)-maxTranscript:]
	}
	for _, msg := range msgs {
		label := styleAssistant.Render("Assistant")
		if msg.Role == backend.RoleUser {
			label = styleUser.Render("You")
		}
		lines = append(lines, label)
		lines = append(lines, strings.Split(wrap(msg.Content, width), "\n")...)
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabs(st app.State) string {
	combos := st.Combinations(m.svc.Catalog())
	var tabs []string
	for _, cb := range combos {
		style := styleTab
		if cb.Key() == st.Combination {
			style = styleActiveTab
		}
		tabs = append(tabs, style.Render(cb.Label()))
		for _, v := range st.Variants {
			if v.Asset != cb.Asset || v.Country != cb.Country {
				continue
			}
			style := styleTab
			if v.ID == st.Combination {
				style = styleActiveTab
			}
			tabs = append(tabs, style.Render(fmt.Sprintf("Variant %d", v.Number)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderFooter() string {
	status := m.notice
	switch {
	case m.busy:
		status = styleSubtitle.Render("Working...")
	case m.failed:
		status = styleError.Render(status)
	case status != "":
		status = styleSuccess.Render(status)
	}

	var help []string
	for _, b := range keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return m.input.View() + "\n" + status + "\n" + styleStatusBar.Render(strings.Join(help, " • "))
}

// wrap soft-wraps text to width columns, keeping existing line breaks.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
