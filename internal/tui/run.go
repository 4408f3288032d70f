package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kredita/kredita/internal/api"
)

// Run starts the dashboard and blocks until the user quits or the
// context is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.DefaultBaseURL
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = api.NewClient(cfg.BaseURL)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
