package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// AdvicePanelModel renders the recommendations card with one tab per
// populated advice field.
type AdvicePanelModel struct {
	theme  themes.Theme
	advice model.Advice
	active model.AdviceTab
	width  int
}

// NewAdvicePanelModel creates the advice panel.
func NewAdvicePanelModel(theme themes.Theme) AdvicePanelModel {
	return AdvicePanelModel{theme: theme}
}

// SetAdvice installs the advice object and the active tab chosen by
// the session.
func (m *AdvicePanelModel) SetAdvice(advice model.Advice, active model.AdviceTab) {
	m.advice = advice
	m.active = active
}

// Resize updates the component width.
func (m *AdvicePanelModel) Resize(width int) {
	m.width = width
}

// HasContent reports whether any panel is populated.
func (m AdvicePanelModel) HasContent() bool {
	return len(m.advice.Available()) > 0
}

// View renders the card.
func (m AdvicePanelModel) View() string {
	tabs := m.advice.Available()
	if len(tabs) == 0 {
		return ""
	}

	title := m.theme.Title.Render("Recommendations & Advice")

	var rendered []string
	for _, tab := range tabs {
		style := m.theme.TabInactive
		if tab == m.active {
			style = m.theme.TabActive
		}
		rendered = append(rendered, style.Render(tab.String()))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	var body string
	switch m.active {
	case model.TabLoan:
		body = m.renderLoan()
	case model.TabSIP:
		body = m.renderSIP()
	case model.TabTips:
		body = m.renderTips()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, tabBar, "", body)
}

func (m AdvicePanelModel) renderLoan() string {
	loan := m.advice.Loan
	if loan == nil {
		return ""
	}

	if !loan.CanTakeLoan {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusError.Render("Not recommended at this time"),
			m.wrap(loan.Reason),
		)
	}

	lines := []string{
		m.theme.StatusSuccess.Render("You can take a new loan"),
		m.wrap(loan.Reason),
		"",
		fmt.Sprintf("Suggested new EMI: %s",
			m.theme.Bold.Render("₹"+analytics.FormatAmount(loan.SuggestedNewEMI))),
	}
	if len(loan.ApproxLoanAmounts) > 0 {
		lines = append(lines, "", m.theme.Subtitle.Render("Loan options"))
		for _, opt := range loan.ApproxLoanAmounts {
			lines = append(lines, fmt.Sprintf("  %2.0f years  ₹%s",
				opt.TenureYears,
				analytics.FormatAmount(opt.ApproxLoanAmount),
			))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AdvicePanelModel) renderSIP() string {
	sip := m.advice.SIP
	if sip == nil {
		return ""
	}

	if !sip.ShouldInvest {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(m.theme.Warning).Render("Not recommended yet"),
			m.wrap(sip.Reason),
		)
	}

	lines := []string{
		m.theme.StatusSuccess.Render("Start investing in SIP"),
		m.wrap(sip.Reason),
		"",
		fmt.Sprintf("Suggested SIP amount: %s",
			m.theme.Bold.Render("₹"+analytics.FormatAmount(sip.SuggestedSIP))),
	}
	if sip.RiskProfile != "" {
		lines = append(lines, fmt.Sprintf("Risk profile: %s",
			m.theme.Bold.Render(strings.ToUpper(string(sip.RiskProfile)))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AdvicePanelModel) renderTips() string {
	var lines []string
	for _, tip := range m.advice.Tips {
		lines = append(lines, "• "+m.wrap(tip))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AdvicePanelModel) wrap(s string) string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
