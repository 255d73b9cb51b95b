package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/widgets"
)

// Pane is one bordered region of a tab. The host selects and focuses panes
// and calls the lifecycle hooks on each transition.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Init() tea.Cmd
	Update(m *core.Model, msg tea.Msg) (Pane, tea.Cmd)
	View(width, height int, selected, focused bool) string
	OnSelect() tea.Cmd
	OnDeselect() tea.Cmd
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// ClickablePane receives left clicks in content coordinates, with 0,0 at the
// first content cell inside the chrome.
type ClickablePane interface {
	Click(m *core.Model, x, y int) (Pane, tea.Cmd)
}

// StaticPane shows a widget that has no interaction of its own. Tabs swap
// the widget as their data changes.
type StaticPane struct {
	id, title, scope, hint string
	jump                   byte
	focusable              bool
	body                   widgets.Widget
}

func NewStaticPane(id, title, scope string, jumpKey byte, focusable bool, body widgets.Widget) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, jump: jumpKey, focusable: focusable, body: body}
}

func (p *StaticPane) SetBody(body widgets.Widget) { p.body = body }
func (p *StaticPane) SetHint(hint string)         { p.hint = hint }

func (p *StaticPane) ID() string      { return p.id }
func (p *StaticPane) Title() string   { return p.title }
func (p *StaticPane) Scope() string   { return p.scope }
func (p *StaticPane) JumpKey() byte   { return p.jump }
func (p *StaticPane) Focusable() bool { return p.focusable }

func (p *StaticPane) Update(*core.Model, tea.Msg) (Pane, tea.Cmd) { return p, nil }

func (p *StaticPane) View(width, height int, selected, focused bool) string {
	frame := widgets.Pane{Title: p.title, Hint: p.hint, Selected: selected, Focused: focused}
	if p.body != nil {
		frame.Content = p.body.Render(max(1, width-2*widgets.PaneContentX), max(1, height-2*widgets.PaneContentY))
	}
	return frame.Render(width, height)
}

func (p *StaticPane) Init() tea.Cmd       { return nil }
func (p *StaticPane) OnSelect() tea.Cmd   { return nil }
func (p *StaticPane) OnDeselect() tea.Cmd { return nil }
func (p *StaticPane) OnFocus() tea.Cmd    { return nil }
func (p *StaticPane) OnBlur() tea.Cmd     { return nil }

type paneWidget struct {
	pane              Pane
	selected, focused bool
}

func (w paneWidget) Render(width, height int) string {
	return w.pane.View(width, height, w.selected, w.focused)
}

// PaneRow lays panes side by side and maps body columns back onto them.
type PaneRow struct {
	IDs    []string
	Ratios []float64
	Gap    int
}

func (r PaneRow) Build(h *PaneHost, m *core.Model) widgets.Widget {
	ws := make([]widgets.Widget, len(r.IDs))
	for i, id := range r.IDs {
		ws[i] = h.BuildPane(id, m)
	}
	return widgets.HStack{Widgets: ws, Ratios: r.Ratios, Gap: r.Gap}
}

// Hit returns the pane drawn at column x of a row width columns wide and x
// relative to that pane's left edge. Gaps hit nothing.
func (r PaneRow) Hit(width, x int) (string, int, bool) {
	n := len(r.IDs)
	if n == 0 || x < 0 {
		return "", 0, false
	}
	left := 0
	for i, w := range widgets.SplitWidths(max(1, width-r.Gap*(n-1)), n, r.Ratios) {
		switch right := left + max(1, w); {
		case x < right:
			return r.IDs[i], x - left, true
		case x < right+r.Gap:
			return "", 0, false
		default:
			left = right + r.Gap
		}
	}
	return "", 0, false
}
