package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/tui/themes"
)

// SortRequestedMsg asks the session to toggle sorting on a column.
type SortRequestedMsg struct {
	Key model.SortKey
}

// TransactionTableModel renders the parsed-transactions card as a
// sortable table.
type TransactionTableModel struct {
	theme   themes.Theme
	rows    []model.Transaction
	sort    model.SortConfig
	table   table.Model
	width   int
	height  int
	focused bool
}

// NewTransactionTableModel creates the transactions table.
func NewTransactionTableModel(theme themes.Theme) TransactionTableModel {
	t := table.New(
		table.WithColumns(columns(model.SortConfig{})),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(theme.Foreground).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true)
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	return TransactionTableModel{
		theme: theme,
		table: t,
	}
}

func columns(cfg model.SortConfig) []table.Column {
	arrow := func(key model.SortKey) string {
		if cfg.Key != key {
			return ""
		}
		if cfg.Desc {
			return " ↓"
		}
		return " ↑"
	}
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Type" + arrow(model.SortType), Width: 8},
		{Title: "Category" + arrow(model.SortCategory), Width: 14},
		{Title: "Amount" + arrow(model.SortAmount), Width: 12},
		{Title: "Date" + arrow(model.SortDate), Width: 14},
	}
}

// SetData replaces the visible rows. The list arrives already sorted;
// the config is only needed for the header indicators.
func (m *TransactionTableModel) SetData(txns []model.Transaction, cfg model.SortConfig) {
	m.rows = txns
	m.sort = cfg

	rows := make([]table.Row, 0, len(txns))
	for i, t := range txns {
		sign := "-"
		if t.IsCredit() {
			sign = "+"
		}
		category := t.Category
		if category == "" {
			category = "-"
		}
		date := t.Date
		if date == "" {
			date = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			string(t.Type),
			category,
			sign + "₹" + analytics.FormatAmount(t.Amount),
			date,
		})
	}
	m.table.SetColumns(columns(cfg))
	m.table.SetRows(rows)
}

// Update handles key events while the table is focused: navigation
// goes to the embedded table, and the sort keys emit SortRequestedMsg.
func (m TransactionTableModel) Update(msg tea.Msg) (TransactionTableModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.focused {
		if sortKey, ok := sortKeyFor(key.String()); ok {
			return m, func() tea.Msg { return SortRequestedMsg{Key: sortKey} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func sortKeyFor(key string) (model.SortKey, bool) {
	switch key {
	case "t":
		return model.SortType, true
	case "c":
		return model.SortCategory, true
	case "a":
		return model.SortAmount, true
	case "d":
		return model.SortDate, true
	case "n":
		return model.SortNone, true
	default:
		return model.SortNone, false
	}
}

// Focus enables table navigation and sort keys.
func (m *TransactionTableModel) Focus() {
	m.focused = true
	m.table.Focus()
}

// Blur disables table navigation.
func (m *TransactionTableModel) Blur() {
	m.focused = false
	m.table.Blur()
}

// Resize updates the component size.
func (m *TransactionTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(max(20, width-2))
	m.table.SetHeight(max(3, height-4))
}

// View renders the card.
func (m TransactionTableModel) View() string {
	count := ""
	if n := len(m.rows); n == 1 {
		count = m.theme.Subtitle.Render("1 item")
	} else if n > 1 {
		count = m.theme.Subtitle.Render(fmt.Sprintf("%d items", n))
	}
	title := m.theme.Title.Render("Parsed Transactions")
	if count != "" {
		title += "  " + count
	}

	if len(m.rows) == 0 {
		empty := m.theme.Faint.Render("No transactions yet.\nSubmit SMS or statement text to extract them.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	hint := ""
	if m.focused {
		hint = m.theme.Faint.Render("sort: [t]ype [c]ategory [a]mount [d]ate [n]one")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View(), hint)
}
