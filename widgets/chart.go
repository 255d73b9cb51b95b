package widgets

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type ChartPoint struct {
	Label string
	Value float64
}

var chartBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))

// BarChart draws one vertical bar per point.
type BarChart struct {
	Title string
	Data  []ChartPoint
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data) == 0 {
		return Text(c.Title + "\n(no data)").Render(width, height)
	}
	chartHeight := max(3, height-1)
	bars := make([]barchart.BarData, 0, len(c.Data))
	for _, p := range c.Data {
		bars = append(bars, barchart.BarData{
			Label: p.Label,
			Values: []barchart.BarValue{
				{Name: p.Label, Value: p.Value, Style: chartBarStyle},
			},
		})
	}
	chart := barchart.New(width, chartHeight)
	chart.PushAll(bars)
	chart.Draw()
	return Text(c.Title + "\n" + chart.View()).Render(width, height)
}
