package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"tab:a"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:a") {
		t.Fatalf("expected ctrl+k in tab:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:b") {
		t.Fatalf("did not expect ctrl+k in tab:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryPrefixScopesAndSpace(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if !reg.IsAction(space, "select-toggle", "form:select") {
		t.Fatalf("space should toggle a focused select")
	}
	if reg.IsAction(space, "select-toggle", "form:text") {
		t.Fatalf("space must stay typeable in text fields")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyTab}, "field-next", "form:text") {
		t.Fatalf("tab should move between fields in any form scope")
	}
	if !reg.Matches("3", "select-item", "form:select") {
		t.Fatalf("digit hints should pick items")
	}
}

func TestKeyRegistryHelpListsEachActionOnce(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:a"}},
		{Keys: []string{"q"}, Action: "close", Description: "close again", Scopes: []string{"screen:a"}},
		{Keys: []string{"enter", "space"}, Action: "toggle", Description: "open", Scopes: []string{"form:*"}},
	})
	help := reg.Help("screen:a")
	if len(help) != 1 || help[0].Keys != "esc" {
		t.Fatalf("help = %+v", help)
	}
	help = reg.Help("form:select")
	if len(help) != 1 || help[0].Keys != "enter/space" || help[0].Desc != "open" {
		t.Fatalf("help = %+v", help)
	}
}

func TestApplyActionKeybindingsOverridesCopies(t *testing.T) {
	base := DefaultKeyBindings()
	out := ApplyActionKeybindings(base, map[string][]string{"submit": {"ctrl+enter"}, "quit": nil})
	reg := NewKeyRegistry(out)
	if !reg.Matches("ctrl+enter", "submit", "form:text") || reg.Matches("ctrl+s", "submit", "form:text") {
		t.Fatalf("submit override not applied")
	}
	if !reg.Matches("q", "quit", "tab:queue") {
		t.Fatalf("empty override should keep the default key")
	}
	out[0].Keys[0] = "x"
	if base[0].Keys[0] != "q" {
		t.Fatalf("override mutated the input bindings")
	}
	if got := DefaultKeybindingsByAction(base)["select-toggle"]; len(got) != 2 || got[0] != "enter" {
		t.Fatalf("select-toggle keys = %v", got)
	}
}
