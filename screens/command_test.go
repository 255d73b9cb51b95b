package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
)

func paletteModel(session core.Session) *core.Model {
	commands := core.NewCommandRegistry([]core.Command{
		{ID: "refresh", Name: "Refresh", Description: "reload data", Scopes: []string{"*"}, Access: core.AccessSignedIn},
		{ID: "clear-history", Name: "Clear history", Description: "delete every visit", Scopes: []string{"*"}, Access: core.AccessAdmin},
		{ID: "sign-out", Name: "Sign out", Scopes: []string{"*"}, Access: core.AccessSignedIn},
	})
	m := core.NewModel(nil, core.NewKeyRegistry(core.DefaultKeyBindings()), commands)
	next, _ := m.Update(core.SessionChangedMsg{Session: session})
	m = next.(core.Model)
	return &m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommandPaletteMarksBlockedCommands(t *testing.T) {
	s := OpenCommandPalette(paletteModel(core.Session{UserID: "u1", Role: "student"}), "pane:queue:log").(*CommandScreen)
	opts := s.Options()
	if len(opts) != 3 {
		t.Fatalf("options = %d, want 3", len(opts))
	}
	last := opts[len(opts)-1]
	if last.ID != "clear-history" || !last.Disabled || last.Reason != "admins only" {
		t.Fatalf("blocked command should sort last with a reason: %+v", last)
	}
}

func TestCommandPaletteFiltersByQuery(t *testing.T) {
	s := OpenCommandPalette(paletteModel(core.Session{UserID: "u1", Role: "admin"}), "app").(*CommandScreen)
	for _, r := range "reload" {
		_, _, _ = s.Update(runes(string(r)))
	}
	opts := s.Options()
	if len(opts) != 1 || opts[0].ID != "refresh" {
		t.Fatalf("filtered options = %+v", opts)
	}
}

func TestCommandPaletteEnterExecutes(t *testing.T) {
	s := OpenCommandPalette(paletteModel(core.Session{UserID: "u1", Role: "admin"}), "app").(*CommandScreen)
	for _, r := range "sign" {
		_, _, _ = s.Update(runes(string(r)))
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should close the palette with a command")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok || msg.CommandID != "sign-out" {
		t.Fatalf("enter produced %#v", cmd())
	}
}

func TestCommandPaletteDisabledEnterReportsReason(t *testing.T) {
	s := OpenCommandPalette(paletteModel(core.Session{}), "app").(*CommandScreen)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter on a blocked command should close with a status")
	}
	status, ok := cmd().(core.StatusMsg)
	if !ok || status.Text == "" {
		t.Fatalf("expected status reason, got %#v", cmd())
	}
}

func TestCommandPaletteEscCloses(t *testing.T) {
	s := OpenCommandPalette(paletteModel(core.Session{}), "app").(*CommandScreen)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc should close without a command")
	}
}
