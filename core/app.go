package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// InputCapturer is implemented by tabs and panes that take free text while
// focused. Global single-letter bindings are skipped while it reports true.
type InputCapturer interface {
	CapturesInput() bool
}

type Model struct {
	title               string
	width               int
	height              int
	tabs                []Tab
	activeTab           int
	screens             ScreenStack
	keys                *KeyRegistry
	commands            *CommandRegistry
	status              string
	statusCode          string
	statusLevel         StatusLevel
	quitting            bool
	OpenPickerModal     func(m *Model) Screen
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(title string, tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	return Model{
		title:    title,
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusCode = ""
	m.statusLevel = StatusInfo
}

func (m *Model) SetError(err error) {
	m.statusCode = ""
	if err == nil {
		m.status = ""
		m.statusLevel = StatusInfo
		return
	}
	m.status = err.Error()
	m.statusLevel = StatusError
}

func (m Model) Status() string { return m.status }

func (m Model) StatusIsError() bool { return m.statusLevel == StatusError }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) ActiveTabIndex() int { return m.activeTab }

func (m Model) Tabs() []Tab { return m.tabs }

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) ScreenDepth() int { return m.screens.Len() }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}
