package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/session"
	"github.com/kredita/kredita/internal/tui/themes"
)

// InputCardModel is the message-entry card: a textarea with a
// character counter and format hints.
type InputCardModel struct {
	theme    themes.Theme
	textarea textarea.Model
	width    int
}

// NewInputCardModel creates the input card.
func NewInputCardModel(theme themes.Theme) InputCardModel {
	ta := textarea.New()
	ta.Placeholder = "Paste your bank SMS or UPI messages here..."
	ta.CharLimit = session.MaxInputLen
	ta.SetHeight(8)
	ta.ShowLineNumbers = false
	ta.Focus()

	return InputCardModel{
		theme:    theme,
		textarea: ta,
	}
}

// Update forwards messages to the textarea.
func (m InputCardModel) Update(msg tea.Msg) (InputCardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// Value returns the current message text.
func (m InputCardModel) Value() string {
	return m.textarea.Value()
}

// SetValue replaces the message text.
func (m *InputCardModel) SetValue(text string) {
	m.textarea.SetValue(text)
}

// Focus gives the textarea keyboard focus.
func (m *InputCardModel) Focus() tea.Cmd {
	return m.textarea.Focus()
}

// Blur removes keyboard focus.
func (m *InputCardModel) Blur() {
	m.textarea.Blur()
}

// Focused reports whether the textarea has focus.
func (m InputCardModel) Focused() bool {
	return m.textarea.Focused()
}

// Resize updates the component size.
func (m *InputCardModel) Resize(width int) {
	m.width = width
	m.textarea.SetWidth(max(20, width-2))
}

// View renders the card.
func (m InputCardModel) View() string {
	title := m.theme.Title.Render("Paste SMS / UPI Messages")
	subtitle := m.theme.Subtitle.Render("Enter transaction messages to analyze credit health")

	count := len(m.textarea.Value())
	counterStyle := m.theme.Faint
	switch {
	case count > session.MaxInputLen*9/10:
		counterStyle = m.theme.StatusError
	case count > session.MaxInputLen*7/10:
		counterStyle = lipgloss.NewStyle().Foreground(m.theme.Warning)
	}
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", count, session.MaxInputLen))

	hints := m.theme.Faint.Render(strings.Join([]string{
		"Supported formats:",
		"  SBIN: Rs.500.00 debited on 21/11/2025 at ATM",
		"  HDFC: Your account credited with INR 12000",
		"  UPI: Rs.200 paid to Amazon via GPay",
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		m.textarea.View(),
		counter,
		hints,
	)
}
