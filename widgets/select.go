package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type SelectPartKind int

const (
	SelectPartText SelectPartKind = iota
	SelectPartTrigger
	SelectPartPanel
)

// SelectRow is one line inside an open panel. Inert rows are static content
// that cannot be chosen.
type SelectRow struct {
	Hint     string
	Label    string
	Selected bool
	Inert    bool
}

// SelectPart is one composed child of a select control, in render order.
// Closed panels are omitted by the caller.
type SelectPart struct {
	Kind  SelectPartKind
	Text  string
	Muted bool
	Rows  []SelectRow
}

// SelectHit identifies what a rendered line belongs to. Row is -1 for
// triggers, static text and panel borders.
type SelectHit struct {
	Part int
	Row  int
}

type SelectBox struct {
	Parts   []SelectPart
	Focused bool
}

var (
	selectTriggerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cdd6f4")).
				Background(lipgloss.Color("#313244"))
	selectTriggerFocusStyle = selectTriggerStyle.
				Foreground(lipgloss.Color("#89b4fa")).
				Bold(true)
	selectMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	selectPanelBorder   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	selectRowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	selectRowOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#a6e3a1"))
	selectHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	selectIndicatorMark = "✓"
)

func (b SelectBox) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := b.Layout(width)
	if len(lines) > height {
		lines = lines[:height]
	}
	return joinLines(lines)
}

// Height is the number of lines Layout produces.
func (b SelectBox) Height() int {
	h := 0
	for _, part := range b.Parts {
		h += partHeight(part)
	}
	return h
}

// HitAt maps a line offset inside the box to the part and row drawn there.
func (b SelectBox) HitAt(line int) (SelectHit, bool) {
	if line < 0 {
		return SelectHit{}, false
	}
	for idx, part := range b.Parts {
		h := partHeight(part)
		if line >= h {
			line -= h
			continue
		}
		if part.Kind != SelectPartPanel {
			return SelectHit{Part: idx, Row: -1}, true
		}
		row := line - 1
		if row < 0 || row >= len(part.Rows) {
			row = -1
		}
		return SelectHit{Part: idx, Row: row}, true
	}
	return SelectHit{}, false
}

// Layout renders every part, one string per line. HitAt maps the same lines
// back to parts and rows.
func (b SelectBox) Layout(width int) []string {
	lines := make([]string, 0, b.Height())
	for _, part := range b.Parts {
		switch part.Kind {
		case SelectPartTrigger:
			lines = append(lines, b.renderTrigger(part, width))
		case SelectPartPanel:
			lines = append(lines, renderPanel(part, width)...)
		default:
			lines = append(lines, padRight(selectMutedStyle.Render(ansi.Truncate(part.Text, width, "")), width))
		}
	}
	return lines
}

func (b SelectBox) renderTrigger(part SelectPart, width int) string {
	chevron := " ▾"
	inner := max(1, width-ansi.StringWidth(chevron)-2)
	text := ansi.Truncate(part.Text, inner, "…")
	pad := inner - ansi.StringWidth(text)
	style := selectTriggerStyle
	if b.Focused {
		style = selectTriggerFocusStyle
	}
	if part.Muted {
		text = selectMutedStyle.Inherit(style).Render(text)
	} else {
		text = style.Render(text)
	}
	return style.Render(" ") + text + style.Render(strings.Repeat(" ", max(0, pad))+chevron+" ")
}

func renderPanel(part SelectPart, width int) []string {
	inner := max(4, width-2)
	lines := make([]string, 0, len(part.Rows)+2)
	lines = append(lines, selectPanelBorder.Render("╭"+strings.Repeat("─", inner)+"╮"))
	for _, row := range part.Rows {
		lines = append(lines, selectPanelBorder.Render("│")+renderRow(row, inner)+selectPanelBorder.Render("│"))
	}
	lines = append(lines, selectPanelBorder.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return lines
}

func renderRow(row SelectRow, width int) string {
	if row.Inert {
		return padRight(selectMutedStyle.Render(" "+ansi.Truncate(row.Label, max(1, width-1), "")), width)
	}
	hint := "   "
	if row.Hint != "" {
		hint = selectHintStyle.Render(" " + row.Hint + " ")
	}
	mark := "  "
	if row.Selected {
		mark = selectIndicatorMark + " "
	}
	label := ansi.Truncate(mark+row.Label, max(1, width-3), "…")
	label = padRight(label, max(1, width-3))
	if row.Selected {
		return hint + selectRowOnStyle.Render(label)
	}
	return hint + selectRowStyle.Render(label)
}

func partHeight(part SelectPart) int {
	if part.Kind == SelectPartPanel {
		return len(part.Rows) + 2
	}
	return 1
}
