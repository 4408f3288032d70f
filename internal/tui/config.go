package tui

import (
	"context"

	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// Analyzer is the remote-service surface the dashboard needs.
type Analyzer interface {
	Parse(ctx context.Context, text string) ([]model.Transaction, error)
	Score(ctx context.Context, text string) ([]model.Transaction, *model.ScoreResult, error)
}

// Config holds dashboard configuration.
type Config struct {
	Analyzer Analyzer
	BaseURL  string
	Theme    themes.Theme
	Width    int
	Height   int
}
