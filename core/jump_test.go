package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/widgets"
)

type jumpPaneTab struct {
	jumped string
}

func (t *jumpPaneTab) ID() string                           { return "jump-tab" }
func (t *jumpPaneTab) Title() string                        { return "JumpTab" }
func (t *jumpPaneTab) Scope() string                        { return "pane:jump:one" }
func (t *jumpPaneTab) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }
func (t *jumpPaneTab) Build(m *Model) widgets.Widget        { return widgets.Text("body") }
func (t *jumpPaneTab) JumpTargets() []JumpTarget {
	return []JumpTarget{
		{Key: "f", Label: "Form"},
		{Key: "h", Label: "History"},
	}
}
func (t *jumpPaneTab) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	t.jumped = key
	return true, StatusCmd("Focused pane: " + key)
}

func TestJumpModeOpensPickerAndSelectsTarget(t *testing.T) {
	keys := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"v"}, Action: "jump", Scopes: []string{"*"}},
	})
	tab := &jumpPaneTab{}
	m := NewModel([]Tab{tab}, keys, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	updated := next.(Model)
	if updated.screens.Len() != 1 {
		t.Fatalf("expected jump picker to open")
	}
	if _, ok := updated.screens.Top().(*JumpPickerScreen); !ok {
		t.Fatalf("default picker not used: %T", updated.screens.Top())
	}

	next, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'H'}})
	updated = next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected jump picker to close after selecting target")
	}
	if cmd == nil {
		t.Fatalf("expected jump selection command")
	}
	updated.Update(cmd())
	if tab.jumped != "h" {
		t.Fatalf("jump target mismatch: %s", tab.jumped)
	}
}

func TestJumpPickerUnknownKeyCloses(t *testing.T) {
	s := NewJumpPickerScreen([]JumpTarget{{Key: "f", Label: "Form"}, {Key: "F", Label: "dup"}, {Key: "", Label: "none"}})
	if len(s.targets) != 1 {
		t.Fatalf("targets = %+v", s.targets)
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if !pop || cmd == nil {
		t.Fatalf("unknown key should close with a status")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text == "" {
		t.Fatalf("unexpected msg %#v", msg)
	}
}
