package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/api"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/session"
	"github.com/kredita/kredita/internal/tui/components"
	"github.com/kredita/kredita/internal/tui/themes"
)

type fakeAnalyzer struct {
	transactions []model.Transaction
	result       *model.ScoreResult
	err          error
}

func (f *fakeAnalyzer) Parse(_ context.Context, _ string) ([]model.Transaction, error) {
	return f.transactions, f.err
}

func (f *fakeAnalyzer) Score(_ context.Context, _ string) ([]model.Transaction, *model.ScoreResult, error) {
	return f.transactions, f.result, f.err
}

func testModel() Model {
	m := newModel(Config{
		Analyzer: &fakeAnalyzer{},
		BaseURL:  api.DefaultBaseURL,
		Theme:    themes.Default,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyPress(m Model, k tea.KeyType) Model {
	return update(m, tea.KeyMsg{Type: k})
}

func scoredModel(t *testing.T) Model {
	t.Helper()

	m := testModel()
	m = keyPress(m, tea.KeyF1)
	m = keyPress(m, tea.KeyCtrlS)
	require.True(t, m.session.Busy)

	result := &model.ScoreResult{
		Score: 85,
		Advice: model.Advice{
			SIP:  &model.SIPAdvice{ShouldInvest: true, SuggestedSIP: 2000},
			Tips: []string{"Track your spending"},
		},
		Metrics: model.Metrics{Income: 12000, Expense: 850},
	}
	txns := []model.Transaction{
		{Type: model.TypeCredit, Amount: 12000, Category: "salary"},
		{Type: model.TypeDebit, Amount: 850, Category: "bills"},
	}
	return update(m, scoreResultMsg{seq: 1, transactions: txns, result: result})
}

func TestSubmitEmptyInputFailsLocally(t *testing.T) {
	m := testModel()
	m = keyPress(m, tea.KeyCtrlS)

	assert.False(t, m.session.Busy, "no request should be issued for empty input")
	require.NotNil(t, m.session.Toast())
	assert.Equal(t, session.SeverityError, m.session.Toast().Severity)
	assert.Contains(t, m.session.Toast().Text, "paste SMS")
	assert.NotEmpty(t, m.session.Banner)
}

func TestSampleKeyLoadsText(t *testing.T) {
	m := testModel()
	m = keyPress(m, tea.KeyF2)

	assert.Equal(t, samples[1], m.input.Value())
	assert.Equal(t, samples[1], m.session.Input)
	require.NotNil(t, m.session.Toast())
	assert.Equal(t, session.SeverityInfo, m.session.Toast().Severity)
}

func TestScoreFlow(t *testing.T) {
	m := scoredModel(t)

	assert.False(t, m.session.Busy)
	require.NotNil(t, m.session.Score)
	assert.Equal(t, 85, m.session.Score.Score)
	assert.Len(t, m.session.Transactions, 2)
	assert.Equal(t, model.TabSIP, m.session.AdviceTab, "first populated tab wins")
	assert.True(t, m.score.Animating(), "score reveal starts on arrival")

	require.NotNil(t, m.session.Toast())
	assert.Equal(t, session.SeveritySuccess, m.session.Toast().Severity)
}

func TestParseFlowSingleDebit(t *testing.T) {
	m := testModel()
	m = keyPress(m, tea.KeyF1)
	m = keyPress(m, tea.KeyCtrlP)
	require.True(t, m.session.Busy)

	m = update(m, parseResultMsg{seq: 1, transactions: []model.Transaction{
		{Type: model.TypeDebit, Amount: 500},
	}})

	require.Len(t, m.session.Transactions, 1)
	assert.Nil(t, m.session.Score, "parse never produces a score")

	groups, total := analytics.Breakdown(m.session.Transactions)
	require.Len(t, groups, 1)
	assert.Equal(t, "debit", groups[0].Name)
	assert.Equal(t, 500.0, total)

	require.NotNil(t, m.session.Toast())
	assert.Contains(t, m.session.Toast().Text, "parsed 1 transaction")
}

func TestResubmitWhileBusyIgnored(t *testing.T) {
	m := testModel()
	m = keyPress(m, tea.KeyF1)
	m = keyPress(m, tea.KeyCtrlS)
	require.True(t, m.session.Busy)

	m = keyPress(m, tea.KeyCtrlP)
	m = update(m, parseResultMsg{seq: 1, transactions: []model.Transaction{{Type: model.TypeDebit, Amount: 1}}})

	assert.False(t, m.session.Busy, "only one request should have been issued")
}

func TestFailureKeepsPreviousData(t *testing.T) {
	m := scoredModel(t)

	m = keyPress(m, tea.KeyCtrlS)
	require.True(t, m.session.Busy)
	m = update(m, scoreResultMsg{seq: 2, err: &api.UnreachableError{Err: errors.New("refused")}})

	assert.False(t, m.session.Busy)
	assert.NotNil(t, m.session.Score, "stale score survives a failed refresh")
	assert.Len(t, m.session.Transactions, 2)
	require.NotNil(t, m.session.Toast())
	assert.Equal(t, session.SeverityError, m.session.Toast().Severity)
	assert.Contains(t, m.session.Banner, "Cannot reach the analysis service")
}

func TestSortRequestTogglesSession(t *testing.T) {
	m := scoredModel(t)

	m = update(m, components.SortRequestedMsg{Key: model.SortAmount})
	assert.Equal(t, model.SortAmount, m.session.Sort.Key)
	assert.False(t, m.session.Sort.Desc)

	m = update(m, components.SortRequestedMsg{Key: model.SortAmount})
	assert.True(t, m.session.Sort.Desc)

	m = update(m, components.SortRequestedMsg{Key: model.SortNone})
	assert.Equal(t, model.SortNone, m.session.Sort.Key)
}

func TestClearResetsSession(t *testing.T) {
	m := scoredModel(t)
	m = keyPress(m, tea.KeyCtrlX)

	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.session.Transactions)
	assert.Nil(t, m.session.Score)
	require.NotNil(t, m.session.Toast())
	assert.Equal(t, "Cleared!", m.session.Toast().Text)
}

func TestEscDismissesToastThenBanner(t *testing.T) {
	m := testModel()
	m = keyPress(m, tea.KeyCtrlS)
	require.NotNil(t, m.session.Toast())
	require.NotEmpty(t, m.session.Banner)

	m = keyPress(m, tea.KeyEsc)
	assert.Nil(t, m.session.Toast())
	assert.NotEmpty(t, m.session.Banner)

	m = keyPress(m, tea.KeyEsc)
	assert.Empty(t, m.session.Banner)
}

func TestFocusCycleSkipsEmptyAdvice(t *testing.T) {
	m := testModel()
	assert.Equal(t, focusInput, m.focus)

	m = keyPress(m, tea.KeyTab)
	assert.Equal(t, focusTable, m.focus)

	m = keyPress(m, tea.KeyTab)
	assert.Equal(t, focusInput, m.focus, "advice card skipped while empty")
}

func TestFocusCycleIncludesPopulatedAdvice(t *testing.T) {
	m := scoredModel(t)

	m = keyPress(m, tea.KeyTab)
	m = keyPress(m, tea.KeyTab)
	assert.Equal(t, focusAdvice, m.focus)

	m = keyPress(m, tea.KeyRight)
	assert.Equal(t, model.TabTips, m.session.AdviceTab)
	m = keyPress(m, tea.KeyRight)
	assert.Equal(t, model.TabSIP, m.session.AdviceTab, "tab switching wraps around")
}

func TestViewRendersDashboard(t *testing.T) {
	m := scoredModel(t)
	view := m.View()

	assert.Contains(t, view, "Smart Credit Analyzer")
	assert.Contains(t, view, "API: "+api.DefaultBaseURL)
	assert.True(t, strings.Contains(view, "Paste bank SMS"))
}
