package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to an action within a set of scopes. Scopes may be
// exact ("pane:queue:log"), "*" or a prefix wildcard such as "form:*".
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyHelp is one footer hint.
type KeyHelp struct {
	Keys string
	Desc string
}

type KeyRegistry struct {
	bindings []KeyBinding
	byAction map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byAction: map[string][]int{}}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.byAction[binding.Action] = append(r.byAction[binding.Action], len(r.bindings))
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Help returns the first binding of each action active in scope, in
// registration order.
func (r *KeyRegistry) Help(scope string) []KeyHelp {
	if r == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []KeyHelp
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description)).Help()
		out = append(out, KeyHelp{Keys: h.Key, Desc: h.Desc})
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.Matches(msg.String(), action, scope)
}

// Matches reports whether the named key triggers action in scope.
func (r *KeyRegistry) Matches(keyName, action, scope string) bool {
	if r == nil {
		return false
	}
	pressed := normalizeKey(keyName)
	for _, idx := range r.byAction[action] {
		b := r.bindings[idx]
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// normalizeKey folds case and spells the space bar the way bindings do.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		prefix, wildcard := strings.CutSuffix(s, "*")
		switch {
		case s == scope:
			return true
		case wildcard && prefix == "":
			return true
		case wildcard && strings.HasPrefix(scope, prefix):
			return true
		}
	}
	return false
}
