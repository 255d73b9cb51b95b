package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CommandAccess is the minimum session a command needs to run.
type CommandAccess int

const (
	AccessAnyone CommandAccess = iota
	AccessSignedIn
	AccessAdmin
)

// refusal is the reason shown when s falls short of a, or "" when allowed.
func (a CommandAccess) refusal(s Session) string {
	switch {
	case a == AccessSignedIn && !s.SignedIn():
		return "sign in first"
	case a == AccessAdmin && !s.IsAdmin():
		return "admins only"
	}
	return ""
}

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Access      CommandAccess
	Execute     func(m *Model) tea.Cmd
	// Disabled is consulted after Access and may veto with a reason.
	Disabled func(m *Model) (bool, string)
}

// CommandResult is one palette row. Blocked commands are listed with the
// reason they cannot run.
type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	order []string
	byID  map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	r := &CommandRegistry{byID: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same ID. Commands without
// an ID are ignored.
func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

// Search lists the commands visible in scope whose text contains every word
// of query. Runnable commands sort before blocked ones, then by name.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	words := strings.Fields(strings.ToLower(query))
	var out []CommandResult
	for _, id := range r.order {
		c := r.byID[id]
		if !scopeMatch(scope, c.Scopes) || !c.matches(words) {
			continue
		}
		reason, blocked := c.check(m)
		out = append(out, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  blocked,
			Reason:    reason,
		})
	}
	slices.SortStableFunc(out, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if a.Disabled {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Execute runs the command, or reports in the status bar why it cannot.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if reason, blocked := c.check(m); blocked {
		return StatusCmd(cmp.Or(reason, "command is disabled"))
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

func (c Command) matches(words []string) bool {
	text := strings.ToLower(strings.Join([]string{c.ID, c.Name, c.Description}, " "))
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func (c Command) check(m *Model) (string, bool) {
	var s Session
	if m != nil {
		s = m.session
	}
	if reason := c.Access.refusal(s); reason != "" {
		return reason, true
	}
	if c.Disabled == nil {
		return "", false
	}
	disabled, reason := c.Disabled(m)
	return reason, disabled
}
