package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. Score and Parse are global
// and fire even while typing; everything else respects focus.
type KeyMap struct {
	Score     key.Binding
	Parse     key.Binding
	Clear     key.Binding
	Copy      key.Binding
	FocusNext key.Binding
	Dismiss   key.Binding
	Sample1   key.Binding
	Sample2   key.Binding
	Sample3   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Score: key.NewBinding(
			key.WithKeys("ctrl+enter", "ctrl+s"),
			key.WithHelp("Ctrl+Enter", "calculate score"),
		),
		Parse: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("Ctrl+P", "parse transactions"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", "clear session"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "copy input"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "cycle focus"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "dismiss message"),
		),
		Sample1: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "load sample 1"),
		),
		Sample2: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "load sample 2"),
		),
		Sample3: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "load sample 3"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("Ctrl+H", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (outside input)"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Score, k.Parse, k.FocusNext, k.Help, k.ForceQuit}
}

// FullHelp returns all key bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Score, k.Parse, k.Clear, k.Copy},
		{k.Sample1, k.Sample2, k.Sample3},
		{k.FocusNext, k.Dismiss, k.Help, k.ForceQuit},
	}
}
