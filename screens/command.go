package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
)

const commandScope = "screen:command"

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the command palette. Typing narrows the list; enter runs
// the highlighted command unless the signed-in user may not.
type CommandScreen struct {
	scope  string
	keys   *core.KeyRegistry
	search func(query string) []CommandOption
	input  textinput.Model
	list   list.Model
}

// OpenCommandPalette builds a palette over the model's command registry. The
// model is copied so the screen does not hold on to a stale pointer.
func OpenCommandPalette(m *core.Model, scope string) core.Screen {
	snapshot := *m
	registry := snapshot.CommandRegistry()
	return NewCommandScreen(scope, snapshot.Keys(), func(query string) []CommandOption {
		results := registry.Search(query, scope, &snapshot)
		out := make([]CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	})
}

func NewCommandScreen(scope string, keys *core.KeyRegistry, search func(query string) []CommandOption) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	lst.KeyMap.Quit.SetEnabled(false)
	s := &CommandScreen{scope: scope, keys: keys, search: search, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return commandScope }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(key, "close", commandScope):
			return s, nil, true
		case s.keys.IsAction(key, "select", commandScope):
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			id := it.ID
			return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
		}
	}
	var inputCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.refresh()
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes {
		return s, inputCmd, false
	}
	var listCmd tea.Cmd
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

// Options returns the commands currently listed.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) refresh() {
	items := s.search(strings.TrimSpace(s.input.Value()))
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	return "Command Palette (scope: " + s.scope + ")\n" + s.input.View() + "\n" + s.list.View()
}
