package widgets

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets out side by side. Columns are sized by SplitWidths
// after the gaps are taken out.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := SplitWidths(max(1, width-h.Gap*(n-1)), n, h.Ratios)
	cols := make([][]string, n)
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rows = max(rows, len(cols[i]))
	}
	gap := strings.Repeat(" ", h.Gap)
	var b strings.Builder
	for row := range rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for i, col := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			b.WriteString(padRight(cell, widths[i]))
		}
	}
	return b.String()
}

// SplitWidths divides total cells into n columns. With one ratio per column
// each gets its floored share and the leftover cells go to the largest
// remainders, earlier columns winning ties. Otherwise the split is even.
// Mouse hit testing relies on this matching what HStack draws.
func SplitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
			if i < total%n {
				out[i]++
			}
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	type share struct {
		idx  int
		frac float64
	}
	shares := make([]share, n)
	used := 0
	for i, w := range weights {
		exact := w / sum * float64(total)
		out[i] = int(exact)
		used += out[i]
		shares[i] = share{idx: i, frac: exact - float64(out[i])}
	}
	slices.SortStableFunc(shares, func(a, b share) int { return cmp.Compare(b.frac, a.frac) })
	for i := 0; used < total; i++ {
		out[shares[i%n].idx]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
