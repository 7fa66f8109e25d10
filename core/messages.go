package core

import tea "github.com/charmbracelet/bubbletea"

type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarn
	StatusError
)

// StatusMsg replaces the status bar line. Code is an optional short tag
// rendered in brackets before the text.
type StatusMsg struct {
	Text  string
	Code  string
	Level StatusLevel
}

type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func CodedStatusCmd(code, text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Code: code} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), Level: StatusError}
	}
}
