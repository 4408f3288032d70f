package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kredita/kredita/internal/analytics"
	"github.com/kredita/kredita/internal/api"
	"github.com/kredita/kredita/internal/model"
	"github.com/kredita/kredita/internal/session"
	"github.com/kredita/kredita/internal/tui/components"
	"github.com/kredita/kredita/internal/tui/themes"
)

// focusArea identifies which card receives non-global keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusTable
	focusAdvice
)

// Model holds the dashboard state. All session mutation happens here,
// inside Update, which keeps the single-writer-per-event-turn rule.
type Model struct {
	session   *session.Session
	theme     themes.Theme
	cfg       Config
	keymap    KeyMap
	input     components.InputCardModel
	table     components.TransactionTableModel
	score     components.ScorePanelModel
	advice    components.AdvicePanelModel
	breakdown components.BreakdownModel
	metrics   components.MetricSeriesModel
	spinner   spinner.Model
	help      help.Model
	focus     focusArea
	width     int
	height    int
	showHelp  bool
	ticking   bool
	quitting  bool
}

// newModel creates a dashboard model from the given configuration.
func newModel(cfg Config) Model {
	theme := cfg.Theme

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.StatusInfo

	return Model{
		cfg:       cfg,
		keymap:    DefaultKeyMap(),
		theme:     theme,
		session:   session.New(),
		input:     components.NewInputCardModel(theme),
		table:     components.NewTransactionTableModel(theme),
		score:     components.NewScorePanelModel(theme),
		advice:    components.NewAdvicePanelModel(theme),
		breakdown: components.NewBreakdownModel(theme),
		metrics:   components.NewMetricSeriesModel(theme),
		spinner:   sp,
		help:      help.New(),
		width:     cfg.Width,
		height:    cfg.Height,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	now := time.Now()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmds = m.handleKey(msg, now)
		return m.ensureTick(cmds)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.SortRequestedMsg:
		if msg.Key == model.SortNone {
			m.session.Sort = model.SortConfig{}
		} else {
			m.session.SetSort(msg.Key)
		}
		m.refreshTable()

	case parseResultMsg:
		if msg.err != nil {
			m.session.Fail(msg.seq, session.OpParse, msg.err, now)
		} else if m.session.ApplyParse(msg.seq, msg.transactions, now) {
			m.refreshTable()
			m.breakdown.SetTransactions(m.session.Transactions)
		}

	case scoreResultMsg:
		if msg.err != nil {
			m.session.Fail(msg.seq, session.OpScore, msg.err, now)
		} else if m.session.ApplyScore(msg.seq, msg.transactions, msg.result, now) {
			m.refreshTable()
			m.breakdown.SetTransactions(m.session.Transactions)
			m.score.SetResult(m.session.Score)
			m.metrics.SetResult(m.session.Score)
			m.refreshAdvice()
		}

	case tickMsg:
		m.ticking = false
		m.score.Tick()
		m.session.ExpireToast(now)

	case copiedMsg:
		if msg.err != nil {
			m.session.PushToast("Failed to copy", session.SeverityError, now)
		} else {
			m.session.PushToast("Copied to clipboard!", session.SeveritySuccess, now)
		}

	case spinner.TickMsg:
		if m.session.Busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m.ensureTick(cmds)
}

// handleKey processes one key event. Global shortcuts win; anything
// unmatched falls through to the focused card.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (Model, []tea.Cmd) {
	var cmds []tea.Cmd
	k := m.keymap

	switch {
	case key.Matches(msg, k.ForceQuit):
		m.quitting = true
		return m, []tea.Cmd{tea.Quit}

	case key.Matches(msg, k.Score):
		return m.submit(session.OpScore, now)

	case key.Matches(msg, k.Parse):
		return m.submit(session.OpParse, now)

	case key.Matches(msg, k.Clear):
		m.session.Clear(now)
		m.input.SetValue("")
		m.refreshTable()
		m.breakdown.SetTransactions(nil)
		m.score.SetResult(nil)
		m.metrics.SetResult(nil)
		m.refreshAdvice()
		return m, nil

	case key.Matches(msg, k.Copy):
		return m, []tea.Cmd{copyCmd(m.input.Value())}

	case key.Matches(msg, k.Sample1), key.Matches(msg, k.Sample2), key.Matches(msg, k.Sample3):
		idx := map[string]int{"f1": 0, "f2": 1, "f3": 2}[msg.String()]
		m.input.SetValue(samples[idx])
		m.session.SetInput(samples[idx])
		m.session.PushToast("Sample loaded!", session.SeverityInfo, now)
		return m, nil

	case key.Matches(msg, k.FocusNext):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, k.Dismiss):
		switch {
		case m.session.Toast() != nil:
			m.session.DismissToast()
		case m.session.Banner != "":
			m.session.DismissBanner()
		}
		return m, nil

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, k.Quit) && m.focus != focusInput:
		m.quitting = true
		return m, []tea.Cmd{tea.Quit}
	}

	// Delegate to the focused card.
	switch m.focus {
	case focusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetInput(m.input.Value())
		cmds = append(cmds, cmd)

	case focusTable:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)

	case focusAdvice:
		m.handleAdviceKey(msg)
	}

	return m, cmds
}

// submit issues one of the two remote operations. Empty input fails
// locally with a notification and never reaches the network; while a
// request is outstanding resubmission is ignored.
func (m Model) submit(op session.Operation, now time.Time) (Model, []tea.Cmd) {
	if m.session.Busy {
		return m, nil
	}

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		msg := api.UserMessage(string(op), api.ErrEmptyInput)
		m.session.Banner = msg
		m.session.PushToast(msg, session.SeverityError, now)
		return m, nil
	}

	seq := m.session.Begin(op)
	cmds := []tea.Cmd{m.spinner.Tick}
	if op == session.OpScore {
		cmds = append(cmds, m.scoreCmd(seq, text))
	} else {
		cmds = append(cmds, m.parseCmd(seq, text))
	}
	return m, cmds
}

// handleAdviceKey switches among the populated advice panels.
func (m *Model) handleAdviceKey(msg tea.KeyMsg) {
	tabs := availableTabs(m.session)
	if len(tabs) == 0 {
		return
	}

	cur := 0
	for i, tab := range tabs {
		if tab == m.session.AdviceTab {
			cur = i
			break
		}
	}

	switch msg.String() {
	case "left", "h":
		cur = (cur - 1 + len(tabs)) % len(tabs)
	case "right", "l":
		cur = (cur + 1) % len(tabs)
	default:
		return
	}

	if m.session.SelectAdviceTab(tabs[cur]) {
		m.refreshAdvice()
	}
}

func availableTabs(s *session.Session) []model.AdviceTab {
	if s.Score == nil {
		return nil
	}
	return s.Score.Advice.Available()
}

// cycleFocus moves focus input -> table -> advice -> input, skipping
// the advice card when it has nothing to show.
func (m *Model) cycleFocus() {
	switch m.focus {
	case focusInput:
		m.input.Blur()
		m.table.Focus()
		m.focus = focusTable
	case focusTable:
		m.table.Blur()
		if m.advice.HasContent() {
			m.focus = focusAdvice
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
	default:
		m.focus = focusInput
		m.input.Focus()
	}
}

// ensureTick keeps exactly one scheduler tick outstanding while the
// animation or a toast deadline needs it.
func (m Model) ensureTick(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if !m.ticking && (m.score.Animating() || m.session.Toast() != nil) {
		m.ticking = true
		cmds = append(cmds, tickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) refreshTable() {
	sorted := analytics.Sort(m.session.Transactions, m.session.Sort)
	m.table.SetData(sorted, m.session.Sort)
}

func (m *Model) refreshAdvice() {
	if m.session.Score == nil {
		m.advice.SetAdvice(model.Advice{}, model.TabNone)
		if m.focus == focusAdvice {
			m.focus = focusInput
			m.input.Focus()
		}
		return
	}
	m.advice.SetAdvice(m.session.Score.Advice, m.session.AdviceTab)
}

func (m *Model) handleResize() {
	m.help.Width = m.width
	left, right := m.columnWidths()
	m.input.Resize(left)
	m.table.Resize(left, m.height/2)
	m.score.Resize(right)
	m.advice.Resize(right)
	m.breakdown.Resize(right)
	m.metrics.Resize(right)
}

// columnWidths splits the terminal into the two dashboard columns; on
// narrow terminals both cards span the full width stacked.
func (m Model) columnWidths() (int, int) {
	if m.width < 100 {
		w := max(40, m.width-2)
		return w, w
	}
	left := m.width * 3 / 5
	return left, m.width - left - 4
}
