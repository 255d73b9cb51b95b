package tabs

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/internal/service"
	"github.com/jask/queuedesk/widgets"
)

// AnalyticsTab shows waiting-time statistics to administrators.
type AnalyticsTab struct {
	host      PaneHost
	row       PaneRow
	locations *StaticPane
	chart     *StaticPane
	backend   AnalyticsBackend
	summary   service.Summary
}

func NewAnalyticsTab(backend AnalyticsBackend) *AnalyticsTab {
	t := &AnalyticsTab{backend: backend}
	t.locations = NewStaticPane("locations", "Locations", "pane:analytics:locations", 'o', true, nil)
	t.chart = NewStaticPane("chart", "Average wait by hour", "pane:analytics:chart", 'c', true, nil)
	t.host = NewPaneHost(t.locations, t.chart)
	t.row = PaneRow{IDs: []string{"locations", "chart"}, Ratios: []float64{0.5, 0.5}, Gap: 1}
	t.lock("Admins only. Sign in with an admin account.")
	return t
}

func (t *AnalyticsTab) ID() string              { return "analytics" }
func (t *AnalyticsTab) Title() string           { return "Analytics" }
func (t *AnalyticsTab) Scope() string           { return t.host.Scope() }
func (t *AnalyticsTab) AdminOnly() bool         { return true }
func (t *AnalyticsTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *AnalyticsTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *AnalyticsTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *AnalyticsTab) InitTab(m *core.Model) tea.Cmd {
	return t.host.Init()
}
func (t *AnalyticsTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *AnalyticsTab) SessionChanged(m *core.Model) tea.Cmd {
	if !m.Session().IsAdmin() {
		t.lock("Admins only. Sign in with an admin account.")
		return nil
	}
	return t.Reload(m)
}

// Reload recomputes the summary. Non-admins get nothing.
func (t *AnalyticsTab) Reload(m *core.Model) tea.Cmd {
	if !m.Session().IsAdmin() {
		return nil
	}
	actor := actorOf(m.Session())
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		summary, err := t.backend.Summarise(ctx, actor)
		return core.DataLoadedMsg{Key: AnalyticsDataKey, Data: summary, Err: err}
	}
}

func (t *AnalyticsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		switch {
		case msg.Err != nil:
			return nil
		case msg.Key == QueueDataKey:
			return t.Reload(m)
		case msg.Key == AnalyticsDataKey:
			summary, _ := msg.Data.(service.Summary)
			t.setSummary(summary)
		}
		return nil
	case tea.MouseMsg:
		return t.host.HandleMouse(m, msg, t.row)
	}
	return t.host.UpdateActive(m, msg)
}

func (t *AnalyticsTab) Build(m *core.Model) widgets.Widget {
	return t.row.Build(&t.host, m)
}

// Summary returns the statistics currently shown.
func (t *AnalyticsTab) Summary() service.Summary {
	return t.summary
}

func (t *AnalyticsTab) lock(note string) {
	t.summary = service.Summary{}
	t.locations.SetHint("")
	t.locations.SetBody(widgets.Text(note))
	t.chart.SetBody(widgets.Text(note))
}

func (t *AnalyticsTab) setSummary(s service.Summary) {
	t.summary = s
	total := 0
	rows := make([][]string, 0, len(s.Locations))
	for _, l := range s.Locations {
		total += l.TotalEntries
		rows = append(rows, []string{
			l.Location,
			strconv.FormatFloat(l.AverageWait, 'f', 1, 64) + " min",
			orDash(l.PeakHour),
			orDash(l.BestHour),
			strconv.Itoa(l.TotalEntries),
		})
	}
	t.locations.SetHint(fmt.Sprintf("%d visits", total))
	t.locations.SetBody(widgets.Table{
		Headers: []string{"Location", "Avg wait", "Peak", "Best", "Visits"},
		Rows:    rows,
		Empty:   "No visits recorded yet.",
	})
	points := make([]widgets.ChartPoint, 0, len(s.Hourly))
	for _, h := range s.Hourly {
		hour, _, _ := strings.Cut(h.Hour, ":")
		points = append(points, widgets.ChartPoint{Label: hour, Value: h.Average})
	}
	t.chart.SetBody(widgets.BarChart{Title: "minutes, all locations", Data: points})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
