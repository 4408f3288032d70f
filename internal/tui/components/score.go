package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// Animation timing: the displayed score climbs from 0 to the target in
// AnimFrames fixed steps over 1.5 seconds.
const (
	AnimFrames   = 50
	AnimInterval = 30 * time.Millisecond
)

// AnimState tracks the animator's lifecycle.
type AnimState int

// Animator states.
const (
	AnimIdle AnimState = iota
	AnimRunning
	AnimSettled
)

// Animator interpolates the displayed score toward a target in fixed
// frame increments. Every new target restarts from 0, never from the
// previously displayed value.
type Animator struct {
	state  AnimState
	target int
	frame  int
}

// Start begins a new animation toward target from 0. Calling Start
// mid-animation abandons the current run entirely.
func (a *Animator) Start(target int) {
	a.state = AnimRunning
	a.target = target
	a.frame = 0
}

// Advance moves one frame forward. It is a no-op unless running.
func (a *Animator) Advance() {
	if a.state != AnimRunning {
		return
	}
	a.frame++
	if a.frame >= AnimFrames {
		a.frame = AnimFrames
		a.state = AnimSettled
	}
}

// Displayed returns the value currently shown. Settled always equals
// the target exactly; intermediate frames floor the interpolation.
func (a Animator) Displayed() int {
	switch a.state {
	case AnimRunning:
		return a.target * a.frame / AnimFrames
	case AnimSettled:
		return a.target
	default:
		return 0
	}
}

// State returns the animator's lifecycle state.
func (a Animator) State() AnimState {
	return a.state
}

// Running reports whether frames still need to advance.
func (a Animator) Running() bool {
	return a.state == AnimRunning
}

// ScorePanelModel renders the credit-health score card: animated
// gauge, band label, and the metric rows.
type ScorePanelModel struct {
	result   *model.ScoreResult
	theme    themes.Theme
	progress progress.Model
	animator Animator
	width    int
}

// NewScorePanelModel creates the score card.
func NewScorePanelModel(theme themes.Theme) ScorePanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false

	return ScorePanelModel{
		theme:    theme,
		progress: prog,
	}
}

// SetResult installs a new score result and restarts the animation
// from zero. A nil result clears the panel.
func (m *ScorePanelModel) SetResult(result *model.ScoreResult) {
	m.result = result
	if result == nil {
		m.animator = Animator{}
		return
	}
	m.animator.Start(result.Score)
}

// Tick advances the animation one frame.
func (m *ScorePanelModel) Tick() {
	m.animator.Advance()
}

// Animating reports whether the gauge still needs ticks.
func (m ScorePanelModel) Animating() bool {
	return m.animator.Running()
}

// Resize updates the component width.
func (m *ScorePanelModel) Resize(width int) {
	m.width = width
	m.progress.Width = max(10, width-4)
}

// View renders the panel.
func (m ScorePanelModel) View() string {
	title := m.theme.Title.Render("Credit Health Score")

	if m.result == nil {
		empty := m.theme.Faint.Render("Run scoring to see metrics")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	displayed := m.animator.Displayed()
	color := m.theme.ScoreColor(m.result.Score)

	gauge := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(fmt.Sprintf("%d", displayed)) +
		m.theme.Faint.Render(" / 100")
	// The band label reflects the final score even while the gauge is
	// still climbing.
	label := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(model.ScoreLabel(m.result.Score))
	bar := m.progress.ViewAs(float64(displayed) / 100)

	sections := []string{
		title,
		"",
		gauge + "  " + label,
		bar,
		"",
		m.renderMetrics(),
	}
	if insights := m.renderInsights(); insights != "" {
		sections = append(sections, "", insights)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ScorePanelModel) renderMetrics() string {
	metrics := m.result.Metrics
	rows := []struct {
		style lipgloss.Style
		label string
		value float64
	}{
		{style: m.theme.StatusSuccess, label: "Income", value: metrics.Income},
		{style: m.theme.Debit, label: "Expenses", value: metrics.Expense},
		{style: lipgloss.NewStyle().Foreground(m.theme.Warning), label: "EMI", value: metrics.EMI},
		{style: m.theme.StatusInfo, label: "Savings", value: metrics.Savings},
	}

	var lines []string
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-9s %s",
			row.label,
			row.style.Render("₹"+analytics.FormatAmount(row.value)),
		))
	}
	return strings.Join(lines, "\n")
}

// renderInsights shows the ratio metrics when the service could derive
// them.
func (m ScorePanelModel) renderInsights() string {
	metrics := m.result.Metrics

	var lines []string
	if metrics.DTI != nil {
		lines = append(lines, fmt.Sprintf("%-14s %s", "Debt-to-income",
			m.theme.Bold.Render(fmt.Sprintf("%.1f%%", *metrics.DTI*100))))
	}
	if metrics.SavingsRate != nil {
		lines = append(lines, fmt.Sprintf("%-14s %s", "Savings rate",
			m.theme.Bold.Render(fmt.Sprintf("%.1f%%", *metrics.SavingsRate*100))))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Key Insights"),
		strings.Join(lines, "\n"),
	)
}
