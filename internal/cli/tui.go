package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dancinggoatstudios/shopcal/internal/cli/formatter"
	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

// ── messages ────────────────────────────────────────────────────────────────

// eventsLoadedMsg signals that jobs and projected events have been (re)loaded.
type eventsLoadedMsg struct {
	events []domain.ProjectedEvent
	jobs   []*domain.Job
	err    error
}

// feedChangedMsg is sent when the change feed publishes a new snapshot.
type feedChangedMsg struct{}

// mutationDoneMsg reports the outcome of a keyboard-driven schedule mutation.
type mutationDoneMsg struct {
	err error
}

// ── key map ─────────────────────────────────────────────────────────────────

type monthKeyMap struct {
	PrevMonth   key.Binding
	NextMonth   key.Binding
	Today       key.Binding
	Reload      key.Binding
	NextEntry   key.Binding
	PrevEntry   key.Binding
	MoveEarlier key.Binding
	MoveLater   key.Binding
	Extend      key.Binding
	Pop         key.Binding
	Clear       key.Binding
	Quit        key.Binding
}

func defaultMonthKeyMap() monthKeyMap {
	return monthKeyMap{
		PrevMonth:   key.NewBinding(key.WithKeys("left", "h")),
		NextMonth:   key.NewBinding(key.WithKeys("right", "l")),
		Today:       key.NewBinding(key.WithKeys("t")),
		Reload:      key.NewBinding(key.WithKeys("r")),
		NextEntry:   key.NewBinding(key.WithKeys("down", "j")),
		PrevEntry:   key.NewBinding(key.WithKeys("up", "k")),
		MoveEarlier: key.NewBinding(key.WithKeys("[")),
		MoveLater:   key.NewBinding(key.WithKeys("]")),
		Extend:      key.NewBinding(key.WithKeys("+", "=")),
		Pop:         key.NewBinding(key.WithKeys("-")),
		Clear:       key.NewBinding(key.WithKeys("esc")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// ── model ───────────────────────────────────────────────────────────────────

// entryRef points at one schedule entry visible in the current month.
type entryRef struct {
	jobID string
	title string
	index int
	date  time.Time
}

// monthModel is the bubbletea model for the interactive month calendar.
// Besides month navigation it supports selecting a work entry and moving
// it, extending the owning job, or popping the job's last day; mutations
// run through the schedule service, so rejections never touch state.
type monthModel struct {
	app   *App
	keys  monthKeyMap
	year  int
	month time.Month
	today time.Time

	events []domain.ProjectedEvent
	jobs   []*domain.Job
	items  []entryRef
	sel    int

	loading bool
	status  string
	err     error
}

func newMonthModel(app *App) monthModel {
	now := domain.Day(time.Now().UTC())
	return monthModel{
		app:     app,
		keys:    defaultMonthKeyMap(),
		year:    now.Year(),
		month:   now.Month(),
		today:   now,
		sel:     -1,
		loading: true,
	}
}

func (m monthModel) Init() tea.Cmd {
	return m.loadEvents()
}

func (m monthModel) loadEvents() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		jobs, err := app.Jobs.List(ctx)
		if err != nil {
			return eventsLoadedMsg{err: err}
		}
		events, err := app.Projection.Events(ctx, app.Config.Filter())
		return eventsLoadedMsg{events: events, jobs: jobs, err: err}
	}
}

func (m monthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case eventsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.events = msg.events
			m.jobs = msg.jobs
			m.rebuildItems()
		}
		return m, nil

	case feedChangedMsg:
		m.loading = true
		return m, m.loadEvents()

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = describeRejection(msg.err).Error()
			return m, nil
		}
		m.status = ""
		m.loading = true
		return m, m.loadEvents()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m monthModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.sel = -1
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.year, m.month = shiftMonth(m.year, m.month, -1)
		m.rebuildItems()
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.year, m.month = shiftMonth(m.year, m.month, 1)
		m.rebuildItems()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		m.year, m.month = m.today.Year(), m.today.Month()
		m.rebuildItems()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadEvents()

	case key.Matches(msg, m.keys.NextEntry):
		m.cycleSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevEntry):
		m.cycleSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.MoveEarlier), key.Matches(msg, m.keys.MoveLater):
		it, ok := m.selected()
		if !ok {
			m.status = "select an entry first (j/k)"
			return m, nil
		}
		target := scheduler.PrevBusinessDay(it.date)
		if key.Matches(msg, m.keys.MoveLater) {
			target = scheduler.NextBusinessDay(it.date)
		}
		return m, m.scheduleCmd(func(ctx context.Context) error {
			_, err := m.app.Schedule.Move(ctx, it.jobID, it.index, target)
			return err
		})

	case key.Matches(msg, m.keys.Extend):
		it, ok := m.selected()
		if !ok {
			m.status = "select an entry first (j/k)"
			return m, nil
		}
		job := m.jobByID(it.jobID)
		if job == nil || len(job.Schedule) == 0 {
			return m, nil
		}
		last := len(job.Schedule) - 1
		end := scheduler.NextBusinessDay(job.Schedule[last].Date)
		return m, m.scheduleCmd(func(ctx context.Context) error {
			_, err := m.app.Schedule.Resize(ctx, it.jobID, last, end)
			return err
		})

	case key.Matches(msg, m.keys.Pop):
		it, ok := m.selected()
		if !ok {
			m.status = "select an entry first (j/k)"
			return m, nil
		}
		return m, m.scheduleCmd(func(ctx context.Context) error {
			_, err := m.app.Schedule.RemoveLast(ctx, it.jobID)
			return err
		})
	}

	return m, nil
}

// scheduleCmd wraps a schedule-service call into a bubbletea command.
func (m monthModel) scheduleCmd(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{err: fn(context.Background())}
	}
}

func (m *monthModel) cycleSelection(step int) {
	if len(m.items) == 0 {
		m.sel = -1
		return
	}
	if m.sel < 0 {
		if step > 0 {
			m.sel = 0
		} else {
			m.sel = len(m.items) - 1
		}
		return
	}
	m.sel = (m.sel + step + len(m.items)) % len(m.items)
}

func (m monthModel) selected() (entryRef, bool) {
	if m.sel < 0 || m.sel >= len(m.items) {
		return entryRef{}, false
	}
	return m.items[m.sel], true
}

func (m monthModel) jobByID(id string) *domain.Job {
	for _, j := range m.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

// rebuildItems recomputes the selectable entries for the displayed month,
// keeping the current selection when the same (job, day index) is still
// visible.
func (m *monthModel) rebuildItems() {
	keepJob, keepIndex := "", -1
	if it, ok := m.selected(); ok {
		keepJob, keepIndex = it.jobID, it.index
	}

	m.items = nil
	for _, job := range m.jobs {
		for i, e := range job.Schedule {
			if e.Date.Year() == m.year && e.Date.Month() == m.month {
				m.items = append(m.items, entryRef{jobID: job.ID, title: job.Title, index: i, date: e.Date})
			}
		}
	}
	sort.Slice(m.items, func(a, b int) bool {
		if !m.items[a].date.Equal(m.items[b].date) {
			return m.items[a].date.Before(m.items[b].date)
		}
		return m.items[a].title < m.items[b].title
	})

	m.sel = -1
	for i, it := range m.items {
		if it.jobID == keepJob && it.index == keepIndex {
			m.sel = i
			break
		}
	}
}

func (m monthModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}

	var sel *formatter.MonthSelection
	if it, ok := m.selected(); ok {
		sel = &formatter.MonthSelection{JobID: it.jobID, Date: it.date}
	}

	out := formatter.FormatMonth(m.year, m.month, m.events, m.app.Config.Color, m.today, sel) + "\n"

	if it, ok := m.selected(); ok {
		out += formatter.Bold(fmt.Sprintf("%s · day %d · %s", it.title, it.index+1, domain.FormatDate(it.date))) + "\n"
	}
	if m.status != "" {
		out += formatter.StyleRed.Render(m.status) + "\n"
	}

	help := "←/→ month · j/k select · [/] move · + extend · - pop · t today · r reload · q quit"
	if m.loading {
		help = "loading…"
	}
	return out + formatter.Dim(help) + "\n"
}

// shiftMonth moves a year/month pair by delta months.
func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
