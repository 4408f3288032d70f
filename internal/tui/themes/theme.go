// Package themes defines the visual styles for the dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Credit        lipgloss.Style
	Debit         lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	Banner        lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
}

// Default is the default theme, following the purple/pink palette of
// the original dashboard.
var Default = Theme{
	Primary:    lipgloss.Color("#8B5CF6"),
	Secondary:  lipgloss.Color("#EC4899"),
	Success:    lipgloss.Color("#10B981"),
	Warning:    lipgloss.Color("#F59E0B"),
	Error:      lipgloss.Color("#EF4444"),
	Info:       lipgloss.Color("#3B82F6"),
	Muted:      lipgloss.Color("#737373"),
	Border:     lipgloss.Color("#404040"),
	Foreground: lipgloss.Color("#fafafa"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#8B5CF6")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#8B5CF6")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 2),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")),
	Credit: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")),
	Debit: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EC4899")),
	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Banner: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#EF4444")).
		Foreground(lipgloss.Color("#EF4444")).
		Padding(0, 1),
}

// ScoreColor returns the color for a score band: green from 80,
// purple from 60, amber from 40, pink below.
func (t Theme) ScoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return t.Success
	case score >= 60:
		return t.Primary
	case score >= 40:
		return t.Warning
	default:
		return t.Secondary
	}
}
