package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWarning   = lipgloss.Color("#F59E0B")

	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleActiveBox = styleBox.
			BorderForeground(colorPrimary)

	styleUser = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleAssistant = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleTab = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleActiveTab = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(colorPrimary).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// scoreStyle colors a 0-100 score the way the assessment panel does.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 85:
		return styleSuccess
	case score >= 70:
		return lipgloss.NewStyle().Foreground(colorSecondary)
	case score >= 50:
		return lipgloss.NewStyle().Foreground(colorWarning)
	default:
		return styleError
	}
}

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
