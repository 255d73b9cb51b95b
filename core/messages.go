package core

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// DataLoadedMsg carries the result of a background load. Key names the data
// set; every tab sees it, so tabs filter on Key.
type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

// SessionChangedMsg replaces the signed-in user. A zero Session signs out.
type SessionChangedMsg struct {
	Session Session
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func SessionCmd(s Session) tea.Cmd {
	return func() tea.Msg { return SessionChangedMsg{Session: s} }
}
