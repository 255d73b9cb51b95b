package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/widgets"
)

// Screen is an overlay drawn above the tabs. Update reports true to be popped.
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

// SessionListener is implemented by tabs that rebuild when the user changes.
type SessionListener interface {
	SessionChanged(m *Model) tea.Cmd
}

// AdminOnlyTab marks tabs whose content only administrators see. The header
// dims them for everyone else.
type AdminOnlyTab interface {
	AdminOnly() bool
}

func adminOnly(t Tab) bool {
	a, ok := t.(AdminOnlyTab)
	return ok && a.AdminOnly()
}

// Model is the root bubbletea model: a row of tabs, a stack of overlay
// screens and the signed-in session.
type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	session   Session

	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	return Model{
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		status:   "Sign in to log a visit",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.tabs {
		if init, ok := t.(TabInitializer); ok {
			cmds = append(cmds, init.InitTab(&m))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status, m.statusErr = msg, false
}

// SetError shows err on the status bar. A nil error clears it.
func (m *Model) SetError(err error) {
	if err == nil {
		m.SetStatus("")
		return
	}
	m.status, m.statusErr = err.Error(), true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) Session() Session {
	return m.session
}

// BodyWidth is the width tabs are rendered at.
func (m Model) BodyWidth() int {
	return max(1, m.width-2)
}

// ActiveScope is the scope key bindings are matched in: the top screen's,
// else the active tab's.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if tab := m.ActiveTab(); tab != nil {
		return tab.Scope()
	}
	return "app"
}

func (m Model) ActiveTab() Tab {
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) SwitchTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
	}
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) Keys() *KeyRegistry {
	return m.keys
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
