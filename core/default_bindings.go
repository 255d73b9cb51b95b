package core

import "slices"

const (
	scopeAll    = "*"
	scopeForm   = "form:*"
	scopeSelect = "form:select"
)

func bind(action, desc string, scopes []string, keys ...string) KeyBinding {
	return KeyBinding{Keys: keys, Action: action, Description: desc, Scopes: scopes}
}

// DefaultKeyBindings is the shipped keymap. Order matters for help output:
// the first binding of an action is the one shown.
func DefaultKeyBindings() []KeyBinding {
	all := []string{scopeAll}
	form := []string{scopeForm}
	sel := []string{scopeSelect}
	palette := []string{"screen:command"}
	return []KeyBinding{
		bind("quit", "quit", all, "q"),
		bind("jump", "jump to pane", all, "v"),
		bind("pane-nav", "pane prev", all, "left", "up"),
		bind("pane-nav-next", "pane next", all, "right", "down"),
		bind("pane-focus", "focus pane", all, "enter"),
		bind("open-command-palette", "commands", all, "ctrl+k"),
		bind("switch-tab-1", "account", all, "1"),
		bind("switch-tab-2", "queue", all, "2"),
		bind("switch-tab-3", "analytics", all, "3"),
		bind("field-next", "next field", form, "tab", "shift+tab"),
		bind("select-toggle", "open/close", sel, "enter", "space"),
		bind("select-item", "choose option", sel, "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		bind("submit", "submit", form, "ctrl+s"),
		bind("unfocus", "leave form", form, "esc"),
		bind("close", "close", []string{"screen:command", "screen:jump-picker"}, "esc"),
		bind("select", "run", palette, "enter"),
	}
}

// DefaultKeybindingsByAction maps each action to the keys of its first
// binding, the shape written to the options file.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if b.Action == "" || len(b.Keys) == 0 {
			continue
		}
		if _, seen := out[b.Action]; !seen {
			out[b.Action] = slices.Clone(b.Keys)
		}
	}
	return out
}

// ApplyActionKeybindings returns a copy of bindings with keys replaced per
// action. Actions missing from overrides, or mapped to no keys, keep theirs.
func ApplyActionKeybindings(bindings []KeyBinding, overrides map[string][]string) []KeyBinding {
	out := make([]KeyBinding, len(bindings))
	for i, b := range bindings {
		keys := b.Keys
		if o := overrides[b.Action]; len(o) > 0 {
			keys = o
		}
		out[i] = KeyBinding{
			Keys:        slices.Clone(keys),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      slices.Clone(b.Scopes),
		}
	}
	return out
}
