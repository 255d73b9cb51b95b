package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetSelectedMsg struct {
	Key string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return StatusCmd("No jump targets on this tab")
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets on this tab")
	}
	if m.OpenJumpPickerModal != nil {
		m.screens.Push(m.OpenJumpPickerModal(m, targets))
	} else {
		m.screens.Push(NewJumpPickerScreen(targets))
	}
	return nil
}

// JumpPickerScreen lists the active tab's targets and resolves one by its key.
type JumpPickerScreen struct {
	targets []JumpTarget
	byKey   map[string]JumpTarget
}

func NewJumpPickerScreen(targets []JumpTarget) *JumpPickerScreen {
	s := &JumpPickerScreen{byKey: make(map[string]JumpTarget, len(targets))}
	for _, target := range targets {
		key := normalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		if _, dup := s.byKey[key]; dup {
			continue
		}
		target.Key = key
		s.byKey[key] = target
		s.targets = append(s.targets, target)
	}
	return s
}

func (s *JumpPickerScreen) Title() string { return "Jump" }
func (s *JumpPickerScreen) Scope() string { return "screen:jump-picker" }

func (s *JumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := normalizeJumpKey(keyMsg.String())
	if keyMsg.String() == "esc" {
		return s, nil, true
	}
	target, found := s.byKey[keyName]
	if !found {
		return s, StatusCmd("No pane mapped to that key"), true
	}
	return s, func() tea.Msg { return JumpTargetSelectedMsg{Key: target.Key} }, true
}

func (s *JumpPickerScreen) View(width, height int) string {
	lines := make([]string, 0, len(s.targets)+3)
	lines = append(lines, "Jump to pane", "")
	for _, target := range s.targets {
		lines = append(lines, shell.jumpKey.Render("["+target.Key+"]")+" "+target.Label)
	}
	lines = append(lines, "", "Press a key to jump. Esc cancels.")
	return fitBlock(strings.Join(lines, "\n"), max(20, width), max(6, height))
}

func normalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	r := []rune(k)
	if len(r) != 1 || !(unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
		return ""
	}
	return k
}
