package widgets

import (
	"slices"
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "A") {
		t.Fatalf("expected left widget first, got %q", out)
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("right widget at column %d, want 16", idx)
	}
}

func TestSplitWidthsFillsTotal(t *testing.T) {
	for _, tc := range []struct {
		total  int
		n      int
		ratios []float64
	}{
		{20, 2, []float64{0.75, 0.25}},
		{17, 3, nil},
		{9, 2, []float64{0.6, 0.4}},
	} {
		sum := 0
		for _, w := range SplitWidths(tc.total, tc.n, tc.ratios) {
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("SplitWidths(%d,%d,%v) sums to %d", tc.total, tc.n, tc.ratios, sum)
		}
	}
}

func TestSplitWidthsGivesLeftoverToLargestRemainder(t *testing.T) {
	for _, tc := range []struct {
		total  int
		ratios []float64
		want   []int
	}{
		{97, []float64{0.5, 0.5}, []int{49, 48}},
		{10, []float64{1, 1, 1}, []int{4, 3, 3}},
		{11, []float64{0.2, 0.8}, []int{2, 9}},
		{7, []float64{0, 1}, []int{4, 3}},
	} {
		got := SplitWidths(tc.total, len(tc.ratios), tc.ratios)
		if !slices.Equal(got, tc.want) {
			t.Fatalf("SplitWidths(%d, %v) = %v, want %v", tc.total, tc.ratios, got, tc.want)
		}
	}
}

func TestTableAlignsColumns(t *testing.T) {
	out := Table{
		Headers: []string{"Location", "Avg"},
		Rows:    [][]string{{"Canteen", "12.5"}, {"Hostel Office", "4"}},
	}.Render(40, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d", len(lines))
	}
	if strings.Index(lines[1], "12.5") != strings.Index(lines[2], "4") {
		t.Fatalf("columns not aligned:\n%s", out)
	}
}
