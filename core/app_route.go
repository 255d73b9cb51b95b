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
		m.status, m.statusErr = msg.Text, msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(fmt.Errorf("load %s: %w", msg.Key, msg.Err))
		}
		return m, m.forwardToTabs(msg)
	case SessionChangedMsg:
		m.session = msg.Session
		if msg.Session.SignedIn() {
			m.SetStatus("Signed in as " + msg.Session.Label())
		} else {
			m.SetStatus("Signed out")
		}
		return m, m.notifySession()
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case JumpTargetSelectedMsg:
		return m, m.jumpTo(msg.Key)
	case tea.MouseMsg:
		return m, m.routeMouse(msg)
	case tea.KeyMsg:
		return m, m.routeKey(msg)
	}
	if m.screens.Top() != nil {
		return m, m.routeScreen(msg)
	}
	return m, m.updateActiveTab(msg)
}

// routeKey offers a key to the top screen, then the focused pane, then the
// global bindings, and finally the active tab.
func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.screens.Top() != nil {
		return m.routeScreen(msg)
	}
	if handler, ok := m.ActiveTab().(PaneKeyHandler); ok {
		if handled, cmd := handler.HandlePaneKey(m, msg); handled {
			return cmd
		}
	}
	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, "jump", scope):
		return m.activateJumpPicker()
	case m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil:
		m.screens.Push(m.OpenCommandModal(m, scope))
		return nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			m.SwitchTab(i)
			return nil
		}
	}
	return m.updateActiveTab(msg)
}

// routeMouse hands clicks to the active tab in body coordinates. Screens
// take no mouse input.
func (m *Model) routeMouse(msg tea.MouseMsg) tea.Cmd {
	if m.screens.Top() != nil {
		return nil
	}
	msg.Y -= m.bodyTop()
	if msg.Y < 0 {
		return nil
	}
	return m.updateActiveTab(msg)
}

func (m *Model) routeScreen(msg tea.Msg) tea.Cmd {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
	} else {
		m.screens.Replace(next)
	}
	return cmd
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	tab := m.ActiveTab()
	if tab == nil {
		return nil
	}
	return tab.Update(m, msg)
}

func (m *Model) jumpTo(key string) tea.Cmd {
	provider, ok := m.ActiveTab().(JumpTargetProvider)
	if !ok {
		return nil
	}
	_, cmd := provider.JumpToTarget(m, key)
	return cmd
}

// bodyTop is the first screen row of the tab body.
func (m Model) bodyTop() int {
	return headerRows + statusRows
}

func (m *Model) notifySession() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.tabs {
		if listener, ok := t.(SessionListener); ok {
			cmds = append(cmds, listener.SessionChanged(m))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) forwardToTabs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.tabs {
		cmds = append(cmds, t.Update(m, msg))
	}
	return tea.Batch(cmds...)
}
