package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/session"
	"github.com/kredita/kredita/internal/tui/themes"
)

func TestAdvicePanelRendersOnlyPresentTabs(t *testing.T) {
	m := NewAdvicePanelModel(themes.Default)
	m.Resize(60)

	advice := model.Advice{Tips: []string{"Track your spending", "Avoid new EMIs"}}
	m.SetAdvice(advice, advice.DefaultTab())

	view := m.View()
	assert.Contains(t, view, "Tips")
	assert.Contains(t, view, "Track your spending")
	assert.NotContains(t, view, "Loan")
	assert.NotContains(t, view, "SIP")
}

func TestAdvicePanelLoanContent(t *testing.T) {
	m := NewAdvicePanelModel(themes.Default)
	m.Resize(80)

	advice := model.Advice{
		Loan: &model.LoanAdvice{
			CanTakeLoan:     true,
			Reason:          "You have headroom for a new EMI.",
			SuggestedNewEMI: 6500,
			ApproxLoanAmounts: []model.LoanOption{
				{TenureYears: 3, ApproxLoanAmount: 201000},
				{TenureYears: 5, ApproxLoanAmount: 305000},
			},
		},
	}
	m.SetAdvice(advice, advice.DefaultTab())

	view := m.View()
	assert.Contains(t, view, "You can take a new loan")
	assert.Contains(t, view, "6,500")
	assert.Contains(t, view, "3 years")
	assert.Contains(t, view, "2,01,000")
}

func TestAdvicePanelEmpty(t *testing.T) {
	m := NewAdvicePanelModel(themes.Default)
	assert.False(t, m.HasContent())
	assert.Empty(t, m.View())
}

func TestTransactionTableSortKeys(t *testing.T) {
	m := NewTransactionTableModel(themes.Default)
	m.Focus()

	m2, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)
	msg := cmd()
	sortMsg, ok := msg.(SortRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, model.SortAmount, sortMsg.Key)

	// Unfocused tables ignore sort keys.
	m2.Blur()
	_, cmd = m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd != nil {
		_, isSort := cmd().(SortRequestedMsg)
		assert.False(t, isSort)
	}
}

func TestTransactionTableView(t *testing.T) {
	m := NewTransactionTableModel(themes.Default)
	m.Resize(80, 20)

	view := m.View()
	assert.Contains(t, view, "No transactions yet")

	m.SetData([]model.Transaction{
		{Type: model.TypeDebit, Category: "groceries", Amount: 1200.50, Date: "02-Nov-2025"},
		{Type: model.TypeCredit, Amount: 25000},
	}, model.SortConfig{Key: model.SortAmount})

	view = m.View()
	assert.Contains(t, view, "2 items")
	assert.Contains(t, view, "groceries")
	assert.Contains(t, view, "1,200.50")
	assert.Contains(t, view, "Amount ↑")
}

func TestBreakdownView(t *testing.T) {
	m := NewBreakdownModel(themes.Default)
	m.Resize(70)

	assert.False(t, m.HasContent())
	assert.Empty(t, m.View())

	m.SetTransactions([]model.Transaction{
		{Type: model.TypeDebit, Category: "groceries", Amount: 750},
		{Type: model.TypeDebit, Category: "bills", Amount: 250},
	})

	require.True(t, m.HasContent())
	view := m.View()
	assert.Contains(t, view, "groceries")
	assert.Contains(t, view, "75.0%")
	assert.Contains(t, view, "25.0%")
}

func TestMetricSeriesView(t *testing.T) {
	m := NewMetricSeriesModel(themes.Default)
	m.Resize(70)

	m.SetResult(nil)
	assert.False(t, m.HasContent())

	m.SetResult(&model.ScoreResult{
		Metrics: model.Metrics{Income: 25000, Expense: 1200, EMI: 2500},
	})
	require.True(t, m.HasContent())

	view := m.View()
	assert.Contains(t, view, "Income")
	assert.Contains(t, view, "Expense")
	assert.Contains(t, view, "EMI")
	assert.Contains(t, view, "25,000")
}

func TestInputCardCounter(t *testing.T) {
	m := NewInputCardModel(themes.Default)
	m.Resize(80)

	m.SetValue("hello")
	view := m.View()
	assert.Contains(t, view, "5/5000")
	assert.Equal(t, "hello", m.Value())
}

func TestRenderToast(t *testing.T) {
	assert.Empty(t, RenderToast(themes.Default, nil))

	toast := &session.Toast{Text: "Score calculated successfully!", Severity: session.SeveritySuccess}
	assert.Contains(t, RenderToast(themes.Default, toast), "Score calculated successfully!")
}

func TestRenderBanner(t *testing.T) {
	assert.Empty(t, RenderBanner(themes.Default, ""))
	assert.Contains(t, RenderBanner(themes.Default, "boom"), "boom")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "longcatego…", truncate("longcategoryname", 11))
}
