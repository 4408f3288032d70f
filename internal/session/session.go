// Package session owns the mutable state of one analysis session. All
// mutation goes through the named operations here; consumers receive
// values, never shared references. The caller is expected to drive
// every operation from a single event loop.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kredita/kredita/internal/api"
	"github.com/kredita/kredita/internal/model"
)

// MaxInputLen caps the message text, matching the input card's counter.
const MaxInputLen = 5000

// ToastTTL is how long a toast stays visible without explicit dismissal.
const ToastTTL = 4 * time.Second

// Operation identifies one of the two remote calls.
type Operation string

// The two remote operations.
const (
	OpParse Operation = "parse"
	OpScore Operation = "score"
)

// Severity grades a toast message.
type Severity int

// Toast severities.
const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Toast is the single transient user-facing message. At most one is
// live; a new push supersedes the current one without queuing.
type Toast struct {
	DismissAt time.Time
	Text      string
	Severity  Severity
}

// Session is the shared state every component renders from.
type Session struct {
	Score        *model.ScoreResult
	toast        *Toast
	Input        string
	Banner       string
	Transactions []model.Transaction
	Sort         model.SortConfig
	AdviceTab    model.AdviceTab
	issuedSeq    uint64
	resolvedSeq  uint64
	Busy         bool
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// SetInput replaces the message text, enforcing the length cap.
func (s *Session) SetInput(text string) {
	if len(text) > MaxInputLen {
		text = text[:MaxInputLen]
	}
	s.Input = text
}

// Begin registers a new request and returns its sequence number. The
// busy flag stays set until the most recent request resolves; both
// operations share the one flag.
func (s *Session) Begin(op Operation) uint64 {
	s.issuedSeq++
	s.Busy = true
	slog.Debug("request issued", "op", op, "seq", s.issuedSeq)
	return s.issuedSeq
}

// resolve records a request completion. It reports whether this
// resolution is authoritative: only the highest sequence resolved so
// far may touch session state, which makes the overlapping-request
// race an explicit last-resolve-wins rule.
func (s *Session) resolve(seq uint64) bool {
	if seq < s.resolvedSeq {
		return false
	}
	s.resolvedSeq = seq
	s.Busy = s.resolvedSeq < s.issuedSeq
	return true
}

// ApplyParse installs a successful extraction result, replacing the
// transaction list wholesale. Stale resolutions are dropped.
func (s *Session) ApplyParse(seq uint64, txns []model.Transaction, now time.Time) bool {
	if !s.resolve(seq) {
		return false
	}
	s.Transactions = txns
	s.Banner = ""
	s.PushToast(fmt.Sprintf("Successfully parsed %d transactions!", len(txns)), SeveritySuccess, now)
	return true
}

// ApplyScore installs a successful scoring result: transactions and
// score replace atomically, and the advice tab re-selects by priority
// because a new advice object arrived.
func (s *Session) ApplyScore(seq uint64, txns []model.Transaction, result *model.ScoreResult, now time.Time) bool {
	if !s.resolve(seq) {
		return false
	}
	s.Transactions = txns
	s.Score = result
	s.Banner = ""
	if result != nil {
		s.AdviceTab = result.Advice.DefaultTab()
	}
	s.PushToast("Score calculated successfully!", SeveritySuccess, now)
	return true
}

// Fail records a failed request. Existing data stays untouched; the
// error surfaces as one toast plus the persistent banner.
func (s *Session) Fail(seq uint64, op Operation, err error, now time.Time) bool {
	if !s.resolve(seq) {
		return false
	}
	msg := api.UserMessage(string(op), err)
	s.Banner = msg
	s.PushToast(msg, SeverityError, now)
	return true
}

// Clear resets input, transactions, and score. Sort config and any
// in-flight bookkeeping survive.
func (s *Session) Clear(now time.Time) {
	s.Input = ""
	s.Transactions = nil
	s.Score = nil
	s.AdviceTab = model.TabNone
	s.Banner = ""
	s.PushToast("Cleared!", SeverityInfo, now)
}

// SetSort toggles the sort config for a column.
func (s *Session) SetSort(key model.SortKey) {
	s.Sort = s.Sort.Toggle(key)
}

// SelectAdviceTab switches the active panel. Switching to a panel the
// current advice does not populate is ignored.
func (s *Session) SelectAdviceTab(tab model.AdviceTab) bool {
	if s.Score == nil || !s.Score.Advice.Has(tab) {
		return false
	}
	s.AdviceTab = tab
	return true
}

// PushToast replaces any visible toast and arms its dismiss deadline.
func (s *Session) PushToast(text string, severity Severity, now time.Time) {
	s.toast = &Toast{
		Text:      text,
		Severity:  severity,
		DismissAt: now.Add(ToastTTL),
	}
}

// Toast returns the live toast, or nil.
func (s *Session) Toast() *Toast {
	return s.toast
}

// DismissToast drops the toast immediately, canceling its deadline.
func (s *Session) DismissToast() {
	s.toast = nil
}

// DismissBanner clears the inline error banner.
func (s *Session) DismissBanner() {
	s.Banner = ""
}

// ExpireToast drops the toast once its deadline has passed. It is
// re-examined on every scheduler tick rather than by an ad hoc timer.
func (s *Session) ExpireToast(now time.Time) bool {
	if s.toast == nil || now.Before(s.toast.DismissAt) {
		return false
	}
	s.toast = nil
	return true
}
