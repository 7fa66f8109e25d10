package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusCode = msg.Code
		m.statusLevel = msg.Level
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(fmt.Errorf("load %s: %w", msg.Key, msg.Err))
		} else {
			m.SetStatus("Data loaded: " + msg.Key)
		}
		cmd := m.updateAllTabs(msg)
		return m, cmd
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case JumpTargetSelectedMsg:
		provider, ok := m.ActiveTab().(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		_, cmd := provider.JumpToTarget(&m, msg.Key)
		return m, cmd
	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	// Ticks and results go to both the overlay and the tab so spinners keep
	// running under an open palette.
	var cmds []tea.Cmd
	if top := m.screens.Top(); top != nil {
		cmds = append(cmds, m.updateTopScreen(msg))
	}
	cmds = append(cmds, m.updateActiveTab(msg))
	return m, tea.Batch(cmds...)
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.screens.Top() != nil {
		cmd := m.updateTopScreen(msg)
		return m, cmd
	}

	tab := m.ActiveTab()
	if capturer, ok := tab.(InputCapturer); ok && capturer.CapturesInput() {
		if handler, ok := tab.(PaneKeyHandler); ok && msg.Type == tea.KeyEsc {
			_, cmd := handler.HandlePaneKey(&m, msg)
			return m, cmd
		}
		cmd := m.updateActiveTab(msg)
		return m, cmd
	}

	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsAction(msg, "jump", scope) {
		cmd := m.activateJumpPicker()
		return m, cmd
	}
	if handler, ok := tab.(PaneKeyHandler); ok {
		if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
			return m, cmd
		}
	}
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil
	}
	if m.keys.IsAction(msg, "open-picker", scope) && m.OpenPickerModal != nil {
		if screen := m.OpenPickerModal(&m); screen != nil {
			m.screens.Push(screen)
		}
		return m, nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			m.SwitchTab(i)
			return m, nil
		}
	}
	cmd := m.updateActiveTab(msg)
	return m, cmd
}

func (m *Model) updateTopScreen(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	if top == nil {
		return nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.ReplaceTop(next)
	return cmd
}

// updateAllTabs delivers results to tabs that are not on screen.
func (m *Model) updateAllTabs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		cmds = append(cmds, t.Update(m, msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab].Update(m, msg)
}
