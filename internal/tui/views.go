package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/tui/components"
)

// View renders the full dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if banner := components.RenderBanner(m.theme, m.session.Banner); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	if toast := components.RenderToast(m.theme, m.session.Toast()); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.input.View(),
		m.table.View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.score.View(),
		m.advice.View(),
		m.metrics.View(),
		m.breakdown.View(),
	)

	if m.width >= 100 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, left, right))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("💳 Smart Credit Analyzer")
	subtitle := m.theme.Subtitle.Render("Paste bank SMS or statement text and score your credit health")

	status := m.theme.Faint.Render("API: " + m.cfg.BaseURL)
	if m.session.Busy {
		status = m.spinner.View() + m.theme.StatusInfo.Render(" Analyzing...")
	}

	line := title + "  " + status
	return lipgloss.JoinVertical(lipgloss.Left, line, subtitle)
}
