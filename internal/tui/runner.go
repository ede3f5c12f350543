package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nleiva/contentscale/internal/app"
)

// Runner handles terminal UI mode
type Runner struct{}

// NewRunner creates a new terminal UI runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts the terminal UI backed by svc
func (r *Runner) Run(svc *app.Service) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}
