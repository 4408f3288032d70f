package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// barPalette cycles through accent colors for breakdown bars, matching
// the original chart palette.
var barPalette = []lipgloss.Color{
	"#8B5CF6", "#EC4899", "#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#06B6D4",
}

// BreakdownModel renders the category breakdown as labeled bars with
// share-of-total percentages.
type BreakdownModel struct {
	theme  themes.Theme
	groups []analytics.Group
	total  float64
	width  int
}

// NewBreakdownModel creates the breakdown card.
func NewBreakdownModel(theme themes.Theme) BreakdownModel {
	return BreakdownModel{theme: theme}
}

// SetTransactions recomputes the aggregation from scratch.
func (m *BreakdownModel) SetTransactions(txns []model.Transaction) {
	m.groups, m.total = analytics.Breakdown(txns)
}

// Resize updates the component width.
func (m *BreakdownModel) Resize(width int) {
	m.width = width
}

// HasContent reports whether there is anything to draw.
func (m BreakdownModel) HasContent() bool {
	return len(m.groups) > 0
}

// View renders the card.
func (m BreakdownModel) View() string {
	if len(m.groups) == 0 {
		return ""
	}

	title := m.theme.Title.Render("Category Breakdown")

	barWidth := m.width - 32
	if barWidth < 10 {
		barWidth = 10
	}

	var maxValue float64
	for _, g := range m.groups {
		if g.Value > maxValue {
			maxValue = g.Value
		}
	}

	var lines []string
	for i, g := range m.groups {
		barLen := 0
		if maxValue > 0 {
			barLen = int(g.Value / maxValue * float64(barWidth))
		}
		bar := lipgloss.NewStyle().
			Foreground(barPalette[i%len(barPalette)]).
			Render(strings.Repeat("█", barLen))

		pct := analytics.PercentOf(g.Value, m.total)
		lines = append(lines, fmt.Sprintf("%-12s %s ₹%s (%.1f%%)",
			truncate(g.Name, 12),
			bar,
			analytics.FormatAmount(g.Value),
			pct,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
