package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kredita/kredita/internal/tui/components"
)

// parseCmd runs the extraction-only operation for the given sequence.
func (m Model) parseCmd(seq uint64, text string) tea.Cmd {
	analyzer := m.cfg.Analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		txns, err := analyzer.Parse(ctx, text)
		return parseResultMsg{seq: seq, transactions: txns, err: err}
	}
}

// scoreCmd runs the extraction-plus-scoring operation.
func (m Model) scoreCmd(seq uint64, text string) tea.Cmd {
	analyzer := m.cfg.Analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		txns, result, err := analyzer.Score(ctx, text)
		return scoreResultMsg{seq: seq, transactions: txns, result: result, err: err}
	}
}

// tickCmd schedules the next scheduler tick.
func tickCmd() tea.Cmd {
	return tea.Tick(components.AnimInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// copyCmd writes the input text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

const requestTimeout = 30 * time.Second
