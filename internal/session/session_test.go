package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredita/kredita/internal/api"
	"github.com/kredita/kredita/internal/model"
)

var now = time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

func TestBeginSetsBusy(t *testing.T) {
	s := New()
	assert.False(t, s.Busy)

	seq := s.Begin(OpParse)
	assert.Equal(t, uint64(1), seq)
	assert.True(t, s.Busy)

	// Both operations share the single flag.
	seq2 := s.Begin(OpScore)
	assert.Equal(t, uint64(2), seq2)
	assert.True(t, s.Busy)
}

func TestApplyParseReplacesListWholesale(t *testing.T) {
	s := New()
	s.Transactions = []model.Transaction{{Type: model.TypeCredit, Amount: 1}}

	seq := s.Begin(OpParse)
	txns := []model.Transaction{
		{Type: model.TypeDebit, Amount: 500, Date: "21/11/2025"},
		{Type: model.TypeCredit, Amount: 12000},
	}
	require.True(t, s.ApplyParse(seq, txns, now))

	assert.Equal(t, txns, s.Transactions)
	assert.False(t, s.Busy)
	require.NotNil(t, s.Toast())
	assert.Equal(t, SeveritySuccess, s.Toast().Severity)
	assert.Contains(t, s.Toast().Text, "2 transactions")
}

func TestApplyScoreSelectsAdviceTabByPriority(t *testing.T) {
	s := New()
	seq := s.Begin(OpScore)

	result := &model.ScoreResult{
		Score:  85,
		Advice: model.Advice{Tips: []string{"build a buffer"}},
	}
	require.True(t, s.ApplyScore(seq, nil, result, now))

	assert.Equal(t, model.TabTips, s.AdviceTab)
	assert.Equal(t, 85, s.Score.Score)
	assert.False(t, s.Busy)

	// Loan is absent, so selecting it is rejected and the state holds.
	assert.False(t, s.SelectAdviceTab(model.TabLoan))
	assert.Equal(t, model.TabTips, s.AdviceTab)

	assert.True(t, s.SelectAdviceTab(model.TabTips))
}

func TestAdviceTabUnchangedWithoutNewAdvice(t *testing.T) {
	s := New()
	seq := s.Begin(OpScore)
	require.True(t, s.ApplyScore(seq, nil, &model.ScoreResult{
		Advice: model.Advice{Loan: &model.LoanAdvice{}, SIP: &model.SIPAdvice{}},
	}, now))
	require.Equal(t, model.TabLoan, s.AdviceTab)

	require.True(t, s.SelectAdviceTab(model.TabSIP))

	// A parse result carries no advice and leaves the selection alone.
	seq = s.Begin(OpParse)
	require.True(t, s.ApplyParse(seq, nil, now))
	assert.Equal(t, model.TabSIP, s.AdviceTab)
}

func TestFailKeepsDataAndRaisesOneErrorToast(t *testing.T) {
	s := New()
	before := []model.Transaction{{Type: model.TypeDebit, Amount: 500}}
	s.Transactions = before

	seq := s.Begin(OpParse)
	err := &api.UnreachableError{Err: errors.New("connection refused")}
	require.True(t, s.Fail(seq, OpParse, err, now))

	assert.Equal(t, before, s.Transactions, "failure must not mutate existing data")
	assert.False(t, s.Busy)

	require.NotNil(t, s.Toast())
	assert.Equal(t, SeverityError, s.Toast().Severity)
	assert.True(t, strings.Contains(s.Toast().Text, "Cannot reach"), "toast carries reachability guidance")
	assert.Equal(t, s.Toast().Text, s.Banner, "banner persists with the same message")
}

func TestLastResolveWins(t *testing.T) {
	s := New()
	first := s.Begin(OpParse)
	second := s.Begin(OpScore)

	// The newer request resolves first and wins.
	require.True(t, s.ApplyScore(second, []model.Transaction{{Amount: 2}}, &model.ScoreResult{Score: 60}, now))
	assert.False(t, s.Busy, "latest issued request has resolved")

	// The older request resolving later is stale and ignored.
	assert.False(t, s.ApplyParse(first, []model.Transaction{{Amount: 1}}, now))
	assert.InDelta(t, 2, s.Transactions[0].Amount, 1e-9)
	assert.NotNil(t, s.Score)

	// Same for a stale failure.
	assert.False(t, s.Fail(first, OpParse, errors.New("late"), now))
	assert.Empty(t, s.Banner)
}

func TestBusyUntilLatestResolves(t *testing.T) {
	s := New()
	first := s.Begin(OpParse)
	second := s.Begin(OpScore)

	require.True(t, s.ApplyParse(first, nil, now))
	assert.True(t, s.Busy, "an issued request is still outstanding")

	require.True(t, s.ApplyScore(second, nil, &model.ScoreResult{}, now))
	assert.False(t, s.Busy)
}

func TestToastSingleSlot(t *testing.T) {
	s := New()
	s.PushToast("first", SeverityInfo, now)
	s.PushToast("second", SeveritySuccess, now.Add(time.Second))

	require.NotNil(t, s.Toast())
	assert.Equal(t, "second", s.Toast().Text, "a new toast supersedes without queuing")
}

func TestToastExpiry(t *testing.T) {
	s := New()
	s.PushToast("hello", SeverityInfo, now)

	assert.False(t, s.ExpireToast(now.Add(ToastTTL-time.Millisecond)))
	require.NotNil(t, s.Toast())

	assert.True(t, s.ExpireToast(now.Add(ToastTTL)))
	assert.Nil(t, s.Toast())

	// Expiring again is a no-op.
	assert.False(t, s.ExpireToast(now.Add(time.Hour)))
}

func TestDismissToastCancelsDeadline(t *testing.T) {
	s := New()
	s.PushToast("hello", SeverityInfo, now)
	s.DismissToast()

	assert.Nil(t, s.Toast())
	assert.False(t, s.ExpireToast(now.Add(time.Hour)))
}

func TestClearResetsSessionData(t *testing.T) {
	s := New()
	seq := s.Begin(OpScore)
	require.True(t, s.ApplyScore(seq, []model.Transaction{{Amount: 5}}, &model.ScoreResult{
		Score:  70,
		Advice: model.Advice{Loan: &model.LoanAdvice{}},
	}, now))
	s.SetInput("some text")
	s.SetSort(model.SortAmount)

	s.Clear(now)

	assert.Empty(t, s.Input)
	assert.Nil(t, s.Transactions)
	assert.Nil(t, s.Score)
	assert.Equal(t, model.TabNone, s.AdviceTab)
	assert.Equal(t, model.SortAmount, s.Sort.Key, "sort config persists across clears")
	require.NotNil(t, s.Toast())
	assert.Equal(t, SeverityInfo, s.Toast().Severity)
}

func TestSetInputCap(t *testing.T) {
	s := New()
	s.SetInput(strings.Repeat("a", MaxInputLen+100))
	assert.Len(t, s.Input, MaxInputLen)
}
