package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Content inside a Pane starts this many columns and rows from its corner.
const (
	PaneContentX = 2
	PaneContentY = 1
)

var (
	paneIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	paneSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	paneFocused  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	paneTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	paneText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	paneEdges    = lipgloss.RoundedBorder()
)

// Pane draws rounded chrome with the title in the top border. The hint is
// drawn in the bottom border while the pane is focused.
type Pane struct {
	Title    string
	Hint     string
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	width, height = max(width, 4), max(height, 3)
	inner := width - 2

	edge, marker := paneIdle, "  "
	switch {
	case p.Focused:
		edge, marker = paneFocused, "● "
	case p.Selected:
		edge, marker = paneSelected, "▶ "
	}
	rule := func(n int) string { return edge.Render(strings.Repeat(paneEdges.Top, max(0, n))) }

	title := " " + ansi.Truncate(strings.TrimSpace(marker+p.Title), max(1, inner-3), "") + " "
	lines := make([]string, 0, height)
	lines = append(lines, edge.Render(paneEdges.TopLeft)+rule(1)+paneTitle.Render(title)+
		rule(inner-1-ansi.StringWidth(title))+edge.Render(paneEdges.TopRight))

	var body []string
	if strings.TrimSpace(p.Content) != "" {
		body = strings.Split(p.Content, "\n")
	}
	side := edge.Render(paneEdges.Left)
	for i := range height - 2 {
		cell := ""
		if i < len(body) {
			cell = paneText.Render(ansi.Truncate(body[i], inner-2, ""))
		}
		lines = append(lines, side+" "+padRight(cell, inner-2)+" "+side)
	}

	bottom := rule(inner)
	if hint := strings.TrimSpace(p.Hint); hint != "" && p.Focused && inner > 4 {
		hint = " " + ansi.Truncate(hint, inner-4, "") + " "
		bottom = rule(inner-1-ansi.StringWidth(hint)) + paneTitle.Render(hint) + rule(1)
	}
	lines = append(lines, edge.Render(paneEdges.BottomLeft)+bottom+edge.Render(paneEdges.BottomRight))
	return strings.Join(lines, "\n")
}
