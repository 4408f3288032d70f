package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/session"
	"github.com/kredita/kredita/internal/tui/themes"
)

// RenderToast draws the single-slot toast, or "" when none is live.
func RenderToast(theme themes.Theme, toast *session.Toast) string {
	if toast == nil {
		return ""
	}

	var color lipgloss.Color
	var icon string
	switch toast.Severity {
	case session.SeveritySuccess:
		color, icon = theme.Success, "✓"
	case session.SeverityError:
		color, icon = theme.Error, "✗"
	default:
		color, icon = theme.Info, "ℹ"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(0, 1).
		Render(icon + " " + toast.Text)
}

// RenderBanner draws the persistent inline error banner, or "" when
// clear.
func RenderBanner(theme themes.Theme, text string) string {
	if text == "" {
		return ""
	}
	return theme.Banner.Render("Error: " + text)
}
