package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/widgets"
)

const noPane = -1

// PaneHost tracks which pane of a tab is selected and which, if any, is
// focused. A focused pane is always the selected one.
type PaneHost struct {
	panes    []Pane
	jump     map[byte]int
	selected int
	focused  int
}

// NewPaneHost panics when a pane lacks an alphanumeric jump key or two panes
// share one; both are wiring mistakes.
func NewPaneHost(panes ...Pane) PaneHost {
	h := PaneHost{panes: panes, jump: make(map[byte]int, len(panes)), focused: noPane}
	for i, p := range panes {
		key := jumpKey(string(p.JumpKey()))
		if key == 0 {
			panic(fmt.Sprintf("pane %q must declare a single alphanumeric jump key", p.ID()))
		}
		if prev, dup := h.jump[key]; dup {
			panic(fmt.Sprintf("duplicate jump key %q across panes %q and %q", string(key), panes[prev].ID(), p.ID()))
		}
		h.jump[key] = i
	}
	return h
}

func jumpKey(s string) byte {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0
	}
	if c := s[0]; ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
		return c
	}
	return 0
}

func (h *PaneHost) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(h.panes))
	for i, p := range h.panes {
		cmds[i] = p.Init()
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) active() (int, bool) {
	if h.focused != noPane {
		return h.focused, true
	}
	return h.selected, h.selected < len(h.panes)
}

func (h *PaneHost) Scope() string {
	if i, ok := h.active(); ok {
		return h.panes[i].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if i, ok := h.active(); ok {
		return h.panes[i].Title()
	}
	return ""
}

func (h *PaneHost) UpdateActive(m *core.Model, msg tea.Msg) tea.Cmd {
	if i, ok := h.active(); ok {
		return h.update(m, i, msg)
	}
	return nil
}

func (h *PaneHost) update(m *core.Model, i int, msg tea.Msg) tea.Cmd {
	next, cmd := h.panes[i].Update(m, msg)
	if next != nil {
		h.panes[i] = next
	}
	return cmd
}

// HandlePaneKey moves the selection while no pane is focused. A focused pane
// owns every key except esc, which unfocuses it, and the palette binding.
func (h *PaneHost) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	keys, scope := m.Keys(), h.Scope()
	if h.focused != noPane {
		switch {
		case msg.String() == "esc":
			return true, h.moveTo(m, h.selected, false)
		case keys.IsAction(msg, "open-command-palette", scope):
			return false, nil
		}
		return true, h.update(m, h.focused, msg)
	}
	n := len(h.panes)
	switch {
	case keys.IsAction(msg, "pane-nav", scope):
		return true, h.moveTo(m, (h.selected+n-1)%n, false)
	case keys.IsAction(msg, "pane-nav-next", scope):
		return true, h.moveTo(m, (h.selected+1)%n, false)
	case keys.IsAction(msg, "pane-focus", scope):
		return true, h.moveTo(m, h.selected, true)
	}
	return false, nil
}

// moveTo selects pane i and focuses or unfocuses it, firing the lifecycle
// hooks of every pane whose state changed. Focus on a pane that cannot take
// it leaves the host untouched.
func (h *PaneHost) moveTo(m *core.Model, i int, focus bool) tea.Cmd {
	if focus && !h.panes[i].Focusable() {
		return nil
	}
	focused := noPane
	if focus {
		focused = i
	}
	if i == h.selected && focused == h.focused {
		return nil
	}
	var cmds []tea.Cmd
	if h.focused != noPane && h.focused != focused {
		cmds = append(cmds, h.panes[h.focused].OnBlur())
	}
	if i != h.selected {
		cmds = append(cmds, h.panes[h.selected].OnDeselect(), h.panes[i].OnSelect())
	}
	if focused != noPane && focused != h.focused {
		cmds = append(cmds, h.panes[focused].OnFocus())
	}
	title := h.panes[i].Title()
	switch {
	case focus:
		m.SetStatus("Focused pane: " + title)
	case h.focused == i:
		m.SetStatus("Pane unfocused: " + title)
	default:
		m.SetStatus("Selected pane: " + title)
	}
	h.selected, h.focused = i, focused
	return tea.Batch(cmds...)
}

// HandleMouse routes a left press to the pane under it. Focusable panes are
// focused first, then clickable panes get the click in content coordinates.
func (h *PaneHost) HandleMouse(m *core.Model, msg tea.MouseMsg, row PaneRow) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	id, x, ok := row.Hit(m.BodyWidth(), msg.X)
	if !ok {
		return nil
	}
	i := h.indexOf(id)
	if i < 0 {
		return nil
	}
	cmds := []tea.Cmd{h.moveTo(m, i, h.panes[i].Focusable())}
	clickable, ok := h.panes[i].(ClickablePane)
	cx, cy := x-widgets.PaneContentX, msg.Y-widgets.PaneContentY
	if ok && cx >= 0 && cy >= 0 {
		next, cmd := clickable.Click(m, cx, cy)
		if next != nil {
			h.panes[i] = next
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) indexOf(id string) int {
	for i, p := range h.panes {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

// BuildPane returns the widget drawing pane id, or a placeholder frame when
// no pane has that id.
func (h *PaneHost) BuildPane(id string, _ *core.Model) widgets.Widget {
	i := h.indexOf(id)
	if i < 0 {
		return widgets.Pane{Title: "Missing pane", Content: id}
	}
	return paneWidget{pane: h.panes[i], selected: i == h.selected, focused: i == h.focused}
}

func (h *PaneHost) JumpTargets() []core.JumpTarget {
	out := make([]core.JumpTarget, 0, len(h.panes))
	for _, p := range h.panes {
		if p.Focusable() {
			out = append(out, core.JumpTarget{Key: string(jumpKey(string(p.JumpKey()))), Label: p.Title()})
		}
	}
	return out
}

func (h *PaneHost) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	i, ok := h.jump[jumpKey(key)]
	if !ok || !h.panes[i].Focusable() {
		return false, nil
	}
	return true, h.moveTo(m, i, true)
}
