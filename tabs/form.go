package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/widgets"
)

const textScope = "form:text"

// Field is one input of a FormPane.
type Field interface {
	Key() string
	Label() string
	Scope() string
	Value() string
	Lines(width int, focused bool) []string
	Update(m *core.Model, msg tea.Msg) tea.Cmd
	Click(m *core.Model, line int) tea.Cmd
	Focus() tea.Cmd
	Blur()
	Reset()
}

// TextField wraps a bubbles text input.
type TextField struct {
	key     string
	label   string
	initial func() string
	input   textinput.Model
}

func NewTextField(key, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 128
	return &TextField{key: key, label: label, input: ti}
}

// Secret masks the typed value.
func (f *TextField) Secret() *TextField {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// WithDefault sets the value the field returns to on Reset.
func (f *TextField) WithDefault(fn func() string) *TextField {
	f.initial = fn
	f.Reset()
	return f
}

func (f *TextField) Key() string   { return f.key }
func (f *TextField) Label() string { return f.label }
func (f *TextField) Scope() string { return textScope }
func (f *TextField) Value() string { return strings.TrimSpace(f.input.Value()) }

// Raw is the value as typed, untrimmed.
func (f *TextField) Raw() string { return f.input.Value() }

func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
}

func (f *TextField) Lines(width int, focused bool) []string {
	f.input.Width = max(1, width-lipgloss.Width(f.input.Prompt)-1)
	return []string{f.input.View()}
}

func (f *TextField) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) Click(m *core.Model, line int) tea.Cmd { return nil }
func (f *TextField) Focus() tea.Cmd                        { return f.input.Focus() }
func (f *TextField) Blur()                                 { f.input.Blur() }

func (f *TextField) Reset() {
	v := ""
	if f.initial != nil {
		v = f.initial()
	}
	f.input.SetValue(v)
}

var (
	formLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	formFocusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	formNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	formButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#a6e3a1")).Bold(true)
	formButtonIdle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Background(lipgloss.Color("#45475a"))
)

const submitFieldIndex = -1

// SubmitFunc receives the trimmed field values by key.
type SubmitFunc func(m *core.Model, values map[string]string) tea.Cmd

// FormPane is a pane of labelled fields followed by a submit button. While
// focused its scope is the focused field's scope.
type FormPane struct {
	id       string
	title    string
	scope    string
	jump     byte
	fields   []Field
	focus    int
	active   bool
	note     string
	button   string
	width    int
	onSubmit SubmitFunc
}

func NewFormPane(id, title, scope string, jumpKey byte, button string, onSubmit SubmitFunc, fields ...Field) *FormPane {
	return &FormPane{id: id, title: title, scope: scope, jump: jumpKey, fields: fields, button: button, onSubmit: onSubmit}
}

func (p *FormPane) ID() string      { return p.id }
func (p *FormPane) Title() string   { return p.title }
func (p *FormPane) JumpKey() byte   { return p.jump }
func (p *FormPane) Focusable() bool { return len(p.fields) > 0 }
func (p *FormPane) Init() tea.Cmd   { return nil }

func (p *FormPane) Scope() string {
	if p.active && len(p.fields) > 0 {
		return p.fields[p.focus].Scope()
	}
	return p.scope
}

// SetNote shows a line above the fields. An empty note removes it.
func (p *FormPane) SetNote(note string) {
	p.note = note
}

func (p *FormPane) Field(key string) Field {
	for _, f := range p.fields {
		if f.Key() == key {
			return f
		}
	}
	return nil
}

// Values returns the current value of every field by key.
func (p *FormPane) Values() map[string]string {
	out := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		out[f.Key()] = f.Value()
	}
	return out
}

// Reset clears every field and moves focus back to the first one.
func (p *FormPane) Reset() tea.Cmd {
	for _, f := range p.fields {
		f.Reset()
	}
	return p.focusField(0)
}

func (p *FormPane) Update(m *core.Model, msg tea.Msg) (Pane, tea.Cmd) {
	if len(p.fields) == 0 {
		return p, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, p.fields[p.focus].Update(m, msg)
	}
	keys := m.Keys()
	scope := p.Scope()
	switch {
	case keys.IsAction(key, "submit", scope):
		return p, p.submit(m)
	case keys.IsAction(key, "field-next", scope):
		delta := 1
		if key.String() == "shift+tab" {
			delta = -1
		}
		return p, p.focusField((p.focus + delta + len(p.fields)) % len(p.fields))
	case key.String() == "enter" && scope == textScope:
		if p.focus == len(p.fields)-1 {
			return p, p.submit(m)
		}
		return p, p.focusField(p.focus + 1)
	}
	return p, p.fields[p.focus].Update(m, msg)
}

func (p *FormPane) focusField(idx int) tea.Cmd {
	if idx < 0 || idx >= len(p.fields) {
		return nil
	}
	if idx != p.focus {
		p.fields[p.focus].Blur()
		p.focus = idx
	}
	if !p.active {
		return nil
	}
	return p.fields[p.focus].Focus()
}

func (p *FormPane) submit(m *core.Model) tea.Cmd {
	if p.onSubmit == nil {
		return nil
	}
	return p.onSubmit(m, p.Values())
}

// formRegion is the block of content lines that belongs to one field, or to
// the submit button when field is submitFieldIndex.
type formRegion struct {
	start int
	end   int
	field int
}

// layout renders the content lines and records which lines belong to which
// field.
func (p *FormPane) layout(width int) ([]string, []formRegion) {
	var lines []string
	var regions []formRegion
	if p.note != "" {
		lines = append(lines, formNoteStyle.Render(p.note), "")
	}
	for i, f := range p.fields {
		focused := p.active && i == p.focus
		label := formLabelStyle.Render(f.Label())
		if focused {
			label = formFocusStyle.Render("▸ " + f.Label())
		}
		lines = append(lines, label)
		body := f.Lines(width, focused)
		regions = append(regions, formRegion{start: len(lines), end: len(lines) + len(body), field: i})
		lines = append(lines, body...)
		lines = append(lines, "")
	}
	button := formButtonIdle.Render(" " + p.button + " ")
	if p.active {
		button = formButtonStyle.Render(" " + p.button + " ")
	}
	regions = append(regions, formRegion{start: len(lines), end: len(lines) + 1, field: submitFieldIndex})
	lines = append(lines, button)
	return lines, regions
}

func (p *FormPane) View(width, height int, selected, focused bool) string {
	p.width = max(1, width-2*widgets.PaneContentX)
	lines, _ := p.layout(p.width)
	hint := ""
	if focused {
		hint = "tab next · ctrl+s " + strings.ToLower(p.button) + " · esc leave"
	}
	return widgets.Pane{Title: p.title, Hint: hint, Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

// Click focuses the field under y and passes the click on to it. Clicking the
// button submits.
func (p *FormPane) Click(m *core.Model, x, y int) (Pane, tea.Cmd) {
	_, regions := p.layout(max(1, p.width))
	for _, r := range regions {
		if y < r.start || y >= r.end {
			continue
		}
		if r.field == submitFieldIndex {
			return p, p.submit(m)
		}
		focusCmd := p.focusField(r.field)
		return p, tea.Batch(focusCmd, p.fields[r.field].Click(m, y-r.start))
	}
	return p, nil
}

func (p *FormPane) OnSelect() tea.Cmd   { return nil }
func (p *FormPane) OnDeselect() tea.Cmd { return nil }

func (p *FormPane) OnFocus() tea.Cmd {
	p.active = true
	if len(p.fields) == 0 {
		return nil
	}
	return p.fields[p.focus].Focus()
}

func (p *FormPane) OnBlur() tea.Cmd {
	p.active = false
	if len(p.fields) > 0 {
		p.fields[p.focus].Blur()
	}
	return nil
}
