package tabs

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/service"
	"github.com/jask/queuedesk/widgets"
)

const recentLimit = 50

type entryRecordedMsg struct {
	entry repository.QueueEntry
	err   error
}

// QueueTab logs a visit to a campus queue and lists recent visits.
type QueueTab struct {
	host    PaneHost
	row     PaneRow
	form    *FormPane
	history *StaticPane
	backend QueueBackend
	entries []repository.QueueEntry
	now     func() time.Time
}

func NewQueueTab(backend QueueBackend, locations []core.SelectNode, now func() time.Time) *QueueTab {
	if now == nil {
		now = time.Now
	}
	t := &QueueTab{backend: backend, now: now}
	t.form = NewFormPane("log", "Log a visit", "pane:queue:log", 'l', "Save visit", t.submit,
		NewTextField("date", "Date (YYYY-MM-DD)", "2006-01-02").WithDefault(func() string {
			return t.now().Format(time.DateOnly)
		}),
		NewSelectField("location", "Location", locations, "", func(v string) tea.Cmd {
			return core.StatusCmd("Location: " + v)
		}),
		NewTextField("entry", "Joined queue (HH:MM)", "09:00"),
		NewTextField("completion", "Served (HH:MM)", "09:20"),
	)
	t.history = NewStaticPane("history", "Recent visits", "pane:queue:history", 'h', true, widgets.Text("Sign in to see your visits."))
	t.host = NewPaneHost(t.form, t.history)
	t.row = PaneRow{IDs: []string{"log", "history"}, Ratios: []float64{0.42, 0.58}, Gap: 1}
	return t
}

func (t *QueueTab) ID() string              { return "queue" }
func (t *QueueTab) Title() string           { return "Queue" }
func (t *QueueTab) Scope() string           { return t.host.Scope() }
func (t *QueueTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *QueueTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *QueueTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *QueueTab) InitTab(m *core.Model) tea.Cmd {
	return t.host.Init()
}
func (t *QueueTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *QueueTab) SessionChanged(m *core.Model) tea.Cmd {
	if !m.Session().SignedIn() {
		t.setEntries(nil, false)
		t.history.SetBody(widgets.Text("Sign in to see your visits."))
		return nil
	}
	return t.Reload(m)
}

// Reload fetches the visits the signed-in user may see.
func (t *QueueTab) Reload(m *core.Model) tea.Cmd {
	actor := actorOf(m.Session())
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		entries, err := t.backend.List(ctx, actor, recentLimit)
		return core.DataLoadedMsg{Key: QueueDataKey, Data: entries, Err: err}
	}
}

func (t *QueueTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case entryRecordedMsg:
		if msg.err != nil {
			m.SetError(msg.err)
			return nil
		}
		m.SetStatus(fmt.Sprintf("Logged %d min wait at %s", msg.entry.WaitingMinutes, msg.entry.Location))
		return tea.Batch(t.form.Reset(), t.Reload(m))
	case core.DataLoadedMsg:
		if msg.Key != QueueDataKey || msg.Err != nil {
			return nil
		}
		entries, _ := msg.Data.([]repository.QueueEntry)
		t.setEntries(entries, m.Session().IsAdmin())
		return nil
	case tea.MouseMsg:
		return t.host.HandleMouse(m, msg, t.row)
	}
	return t.host.UpdateActive(m, msg)
}

func (t *QueueTab) setEntries(entries []repository.QueueEntry, everyone bool) {
	t.entries = entries
	hint := "mine"
	if everyone {
		hint = "all users"
	}
	t.history.SetHint(hint)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		wait := fmt.Sprintf("%d min", e.WaitingMinutes)
		rows = append(rows, []string{e.Date, e.Location, e.EntryTime, e.CompletionTime, wait})
	}
	t.history.SetBody(widgets.Table{
		Headers: []string{"Date", "Location", "In", "Out", "Wait"},
		Rows:    rows,
		Empty:   "No visits logged yet.",
	})
}

// Entries returns the visits currently listed.
func (t *QueueTab) Entries() []repository.QueueEntry {
	return t.entries
}

func (t *QueueTab) Build(m *core.Model) widgets.Widget {
	return t.row.Build(&t.host, m)
}

func (t *QueueTab) submit(m *core.Model, values map[string]string) tea.Cmd {
	actor := actorOf(m.Session())
	in := service.QueueInput{
		Date:           values["date"],
		Location:       values["location"],
		EntryTime:      values["entry"],
		CompletionTime: values["completion"],
	}
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		e, err := t.backend.Record(ctx, actor, in)
		return entryRecordedMsg{entry: e, err: err}
	}
}
