package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// MetricSeriesModel renders the three-point Income/Expense/EMI series.
type MetricSeriesModel struct {
	theme  themes.Theme
	series []analytics.Point
	width  int
}

// NewMetricSeriesModel creates the metric series card.
func NewMetricSeriesModel(theme themes.Theme) MetricSeriesModel {
	return MetricSeriesModel{theme: theme}
}

// SetResult rebuilds the series; a nil result empties it.
func (m *MetricSeriesModel) SetResult(result *model.ScoreResult) {
	m.series = analytics.MetricSeries(result)
}

// Resize updates the component width.
func (m *MetricSeriesModel) Resize(width int) {
	m.width = width
}

// HasContent reports whether a series exists.
func (m MetricSeriesModel) HasContent() bool {
	return len(m.series) > 0
}

// View renders the card.
func (m MetricSeriesModel) View() string {
	if len(m.series) == 0 {
		return ""
	}

	title := m.theme.Title.Render("Metric Trend")

	barWidth := m.width - 28
	if barWidth < 10 {
		barWidth = 10
	}

	var maxValue float64
	for _, p := range m.series {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	var lines []string
	for _, p := range m.series {
		barLen := 0
		if maxValue > 0 {
			barLen = int(p.Value / maxValue * float64(barWidth))
		}
		bar := lipgloss.NewStyle().
			Foreground(m.theme.Primary).
			Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%-8s %s ₹%s",
			p.Name, bar, analytics.FormatAmount(p.Value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}
