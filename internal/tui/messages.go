package tui

import (
	"time"

	"github.com/kredita/kredita/internal/model"
)

// Request completion messages. Each carries the sequence number of the
// request it resolves so the session can drop stale resolutions.
type parseResultMsg struct {
	err          error
	transactions []model.Transaction
	seq          uint64
}

type scoreResultMsg struct {
	err          error
	result       *model.ScoreResult
	transactions []model.Transaction
	seq          uint64
}

// tickMsg drives the one scheduler loop: score animation frames and
// the toast dismiss deadline.
type tickMsg time.Time

// copiedMsg reports the clipboard copy outcome.
type copiedMsg struct {
	err error
}
