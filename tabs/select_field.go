package tabs

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/widgets"
)

const (
	selectScope = "form:select"
	maxHints    = 9
)

// SelectField puts a core.SelectControl inside a form. Keys and clicks are
// turned into activations of the composed children; the field never writes
// the control's state itself.
type SelectField struct {
	key     string
	label   string
	nodes   []core.SelectNode
	initial string
	notify  func(value string) tea.Cmd

	control *core.SelectControl
	value   string
	changed bool
}

// NewSelectField builds the field. notify, when set, turns each committed
// value into a command, typically a status line.
func NewSelectField(key, label string, nodes []core.SelectNode, initial string, notify func(string) tea.Cmd) *SelectField {
	f := &SelectField{key: key, label: label, nodes: nodes, initial: initial, notify: notify}
	f.Reset()
	return f
}

func (f *SelectField) Key() string   { return f.key }
func (f *SelectField) Label() string { return f.label }
func (f *SelectField) Scope() string { return selectScope }

// Value is the value last reported through the change callback, or the
// initial value before any commit.
func (f *SelectField) Value() string { return f.value }

func (f *SelectField) State() core.ControlState { return f.control.State() }

// Reset rebuilds the control so the initial value is read again.
func (f *SelectField) Reset() {
	f.value = f.initial
	f.control = core.NewSelectControl(f.nodes,
		core.WithInitialValue(f.initial),
		core.WithValueChange(f.valueChanged),
	)
}

func (f *SelectField) valueChanged(v string) {
	f.value = v
	f.changed = true
}

func (f *SelectField) Focus() tea.Cmd { return nil }

// Blur closes an open panel through its trigger.
func (f *SelectField) Blur() {
	if f.control.State().Open {
		if trigger, ok := f.trigger(); ok {
			f.activate(trigger)
		}
	}
}

func (f *SelectField) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(key, "select-toggle", selectScope):
		if trigger, ok := f.trigger(); ok {
			return f.activate(trigger)
		}
	case keys.IsAction(key, "select-item", selectScope):
		n, err := strconv.Atoi(key.String())
		if err != nil {
			return nil
		}
		items := f.compose(true).items
		if n >= 1 && n <= len(items) {
			return f.activate(items[n-1])
		}
	}
	return nil
}

// Lines renders the control at width.
func (f *SelectField) Lines(width int, focused bool) []string {
	return f.compose(focused).box.Layout(width)
}

// Click activates whatever is drawn on line of the field.
func (f *SelectField) Click(m *core.Model, line int) tea.Cmd {
	view := f.compose(true)
	hit, ok := view.box.HitAt(line)
	if !ok {
		return nil
	}
	if hit.Row >= 0 {
		return f.activate(view.rows[hit.Part][hit.Row])
	}
	return f.activate(view.parts[hit.Part])
}

func (f *SelectField) trigger() (core.Composed, bool) {
	for _, c := range f.control.Compose() {
		if c.Trigger != nil {
			return c, true
		}
	}
	return core.Composed{}, false
}

func (f *SelectField) activate(c core.Composed) tea.Cmd {
	f.changed = false
	if !c.Activate() || !f.changed || f.notify == nil {
		return nil
	}
	return f.notify(f.value)
}

// selectView is one composition laid out for drawing, with the composed child
// behind every part and panel row so hits can be activated.
type selectView struct {
	box   widgets.SelectBox
	parts []core.Composed
	rows  [][]core.Composed
	items []core.Composed
}

func (f *SelectField) compose(focused bool) selectView {
	v := selectView{box: widgets.SelectBox{Focused: focused}}
	for _, c := range f.control.Compose() {
		if !c.Rendered() {
			continue
		}
		switch {
		case c.Trigger != nil:
			text, fallback := c.TriggerText()
			v.add(widgets.SelectPart{Kind: widgets.SelectPartTrigger, Text: text, Muted: fallback}, c, nil)
		case c.Content != nil:
			part := widgets.SelectPart{Kind: widgets.SelectPartPanel}
			for _, child := range c.Children {
				part.Rows = append(part.Rows, v.row(child))
			}
			v.add(part, c, c.Children)
		case c.Node.Role == core.RoleOptionItem:
			v.add(widgets.SelectPart{Kind: widgets.SelectPartText, Text: c.Node.Label()}, c, nil)
		default:
			v.add(widgets.SelectPart{Kind: widgets.SelectPartText, Text: c.Node.PlainText()}, c, nil)
		}
	}
	return v
}

func (v *selectView) add(part widgets.SelectPart, c core.Composed, rows []core.Composed) {
	v.box.Parts = append(v.box.Parts, part)
	v.parts = append(v.parts, c)
	v.rows = append(v.rows, rows)
}

func (v *selectView) row(child core.Composed) widgets.SelectRow {
	if child.Item == nil {
		return widgets.SelectRow{Label: child.Node.PlainText(), Inert: true}
	}
	v.items = append(v.items, child)
	row := widgets.SelectRow{Label: child.Node.Label(), Selected: child.Item.Selected}
	if n := len(v.items); n <= maxHints {
		row.Hint = strconv.Itoa(n)
	}
	return row
}
