package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

// RenderPopup draws popup in a bordered card centred on a width x height
// canvas of base. Base lines above, below and beside the card stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = padRight(canvas[i], width)
	}
	card := strings.Split(popupCard.Render(popup), "\n")
	cardWidth := 0
	for _, line := range card {
		cardWidth = max(cardWidth, ansi.StringWidth(line))
	}
	if cardWidth == 0 {
		return joinLines(canvas)
	}
	left := max(0, (width-cardWidth)/2)
	top := max(0, (height-len(card))/2)
	for i, line := range card {
		row := top + i
		if row >= height {
			break
		}
		canvas[row] = splice(canvas[row], padRight(line, cardWidth), left, width)
	}
	return joinLines(canvas)
}

// splice replaces the columns of line starting at col with patch, clipping
// the result to width.
func splice(line, patch string, col, width int) string {
	end := col + ansi.StringWidth(patch)
	out := ansi.Truncate(line, col, "") + patch
	if end < width {
		out += ansi.TruncateLeft(line, end, "")
	}
	return padRight(out, width)
}

// splitToLines splits s on newlines and pads or clips to height lines. A
// height of zero keeps every line.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
