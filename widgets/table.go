package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)

// Table renders left-aligned columns sized to their widest cell.
type Table struct {
	Headers []string
	Rows    [][]string
	Empty   string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}
	lines := []string{padRight(tableHeaderStyle.Render(formatRow(t.Headers, widths)), width)}
	if len(t.Rows) == 0 && t.Empty != "" {
		lines = append(lines, padRight(t.Empty, width))
	}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, padRight(formatRow(row, widths), width))
	}
	return strings.Join(lines, "\n")
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = cell + strings.Repeat(" ", max(0, widths[i]-ansi.StringWidth(cell)))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
