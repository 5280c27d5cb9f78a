package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

// planKeyMap binds the grid's keyboard gesture set.
type planKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	DayLeft     key.Binding
	DayRight    key.Binding
	PrevWeek    key.Binding
	NextWeek    key.Binding
	GrabDrop    key.Binding
	New         key.Binding
	NewFullDay  key.Binding
	CycleAffair key.Binding
	Delete      key.Binding
	Stats       key.Binding
	Reload      key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

var planKeys = planKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	Left:        key.NewBinding(key.WithKeys("left", "h")),
	Right:       key.NewBinding(key.WithKeys("right", "l")),
	DayLeft:     key.NewBinding(key.WithKeys("shift+left", "H")),
	DayRight:    key.NewBinding(key.WithKeys("shift+right", "L")),
	PrevWeek:    key.NewBinding(key.WithKeys("[")),
	NextWeek:    key.NewBinding(key.WithKeys("]")),
	GrabDrop:    key.NewBinding(key.WithKeys(" ", "enter")),
	New:         key.NewBinding(key.WithKeys("n")),
	NewFullDay:  key.NewBinding(key.WithKeys("N")),
	CycleAffair: key.NewBinding(key.WithKeys("a")),
	Delete:      key.NewBinding(key.WithKeys("x", "d")),
	Stats:       key.NewBinding(key.WithKeys("s")),
	Reload:      key.NewBinding(key.WithKeys("r")),
	Cancel:      key.NewBinding(key.WithKeys("esc")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// planLoadedMsg carries the result of a window load.
type planLoadedMsg struct {
	window domain.DateWindow
	cfg    domain.CalendarConfig
	cells  []planning.PlanningCell
	err    error
}

// PlanModel is the interactive planning grid: workers as rows, the days of
// one week as columns. A grab-move-drop keyboard gesture drives the
// drag/drop controller; every move revalidates the candidate placement.
type PlanModel struct {
	app   *App
	store *planning.Store
	ctrl  *planning.Controller

	window domain.DateWindow
	cfg    domain.CalendarConfig
	cells  []planning.PlanningCell
	slots  int // cells per day

	cursorRow  int // index into workers
	cursorCell int // index into cells

	// affairIdx selects the affair used when creating an assignment.
	affairIdx int

	showStats bool
	status    string
	err       error

	width  int
	height int
}

// NewPlanModel creates the grid model for the week containing ref.
func NewPlanModel(app *App, ref time.Time) *PlanModel {
	store := planning.NewStore()
	return &PlanModel{
		app:    app,
		store:  store,
		ctrl:   planning.NewController(store),
		window: domain.WeekWindow(ref),
	}
}

func (m *PlanModel) Init() tea.Cmd {
	return m.loadCmd(m.window)
}

func (m *PlanModel) loadCmd(window domain.DateWindow) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.store.Load(ctx, window, m.app.Planning); err != nil {
			return planLoadedMsg{window: window, err: err}
		}
		cfg, err := m.app.Planning.FetchCalendarConfig(ctx)
		if err != nil {
			return planLoadedMsg{window: window, err: err}
		}
		cells, err := planning.CellsFor(window, cfg, time.Now())
		if err != nil {
			return planLoadedMsg{window: window, err: err}
		}
		return planLoadedMsg{window: window, cfg: cfg, cells: cells}
	}
}

func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case planLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.window = msg.window
		m.cfg = msg.cfg
		m.cells = msg.cells
		m.slots = len(msg.cells) / len(msg.window.Days())
		m.clampCursor()
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PlanModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, planKeys.Quit):
		if m.ctrl.State() == planning.StateDragging {
			m.ctrl.Cancel()
			m.status = "Drag cancelled"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, planKeys.Cancel):
		if m.ctrl.State() == planning.StateDragging {
			m.ctrl.Cancel()
			m.status = "Drag cancelled"
		}
		return m, nil

	case key.Matches(msg, planKeys.Reload):
		return m, m.loadCmd(m.window)
	}

	// Every remaining key reads the snapshot; until a window has loaded
	// there is nothing to act on.
	if m.store.Snapshot() == nil || len(m.cells) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, planKeys.Left):
		return m.moveCursor(0, -1)
	case key.Matches(msg, planKeys.Right):
		return m.moveCursor(0, 1)
	case key.Matches(msg, planKeys.DayLeft):
		return m.moveCursor(0, -m.slots)
	case key.Matches(msg, planKeys.DayRight):
		return m.moveCursor(0, m.slots)
	case key.Matches(msg, planKeys.Up):
		return m.moveCursor(-1, 0)
	case key.Matches(msg, planKeys.Down):
		return m.moveCursor(1, 0)

	case key.Matches(msg, planKeys.PrevWeek):
		return m.shiftWeek(-7)
	case key.Matches(msg, planKeys.NextWeek):
		return m.shiftWeek(7)

	case key.Matches(msg, planKeys.CycleAffair):
		affairs := m.store.Snapshot().Affairs()
		if len(affairs) > 0 {
			m.affairIdx = (m.affairIdx + 1) % len(affairs)
			m.status = "Affair for new assignments: " + affairs[m.affairIdx].Number
		}
		return m, nil

	case key.Matches(msg, planKeys.GrabDrop):
		return m.grabOrDrop()

	case key.Matches(msg, planKeys.New):
		return m.beginCreate(false)
	case key.Matches(msg, planKeys.NewFullDay):
		return m.beginCreate(true)

	case key.Matches(msg, planKeys.Delete):
		return m.deleteUnderCursor()

	case key.Matches(msg, planKeys.Stats):
		m.showStats = !m.showStats
		return m, nil
	}
	return m, nil
}

func (m *PlanModel) moveCursor(dRow, dCell int) (tea.Model, tea.Cmd) {
	workers := m.store.Snapshot().Workers()
	if len(workers) == 0 || len(m.cells) == 0 {
		return m, nil
	}
	m.cursorRow = clamp(m.cursorRow+dRow, 0, len(workers)-1)
	m.cursorCell = clamp(m.cursorCell+dCell, 0, len(m.cells)-1)

	if m.ctrl.State() == planning.StateDragging {
		res, err := m.ctrl.UpdateTarget(workers[m.cursorRow].ID, m.cells[m.cursorCell])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = dragStatus(m.ctrl.Candidate(), res)
	}
	return m, nil
}

func (m *PlanModel) shiftWeek(days int) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == planning.StateDragging {
		m.ctrl.Cancel()
	}
	next := domain.DateWindow{
		From: m.window.From.AddDate(0, 0, days),
		To:   m.window.To.AddDate(0, 0, days),
	}
	return m, m.loadCmd(next)
}

// grabOrDrop is the grid's main gesture: grab the assignment under the
// cursor, or drop the one in hand.
func (m *PlanModel) grabOrDrop() (tea.Model, tea.Cmd) {
	if m.ctrl.State() == planning.StateDragging {
		return m.commit()
	}

	snap := m.store.Snapshot()
	workers := snap.Workers()
	if len(workers) == 0 || len(m.cells) == 0 {
		return m, nil
	}
	hits := snap.AssignmentsInCell(workers[m.cursorRow].ID, m.cells[m.cursorCell])
	if len(hits) == 0 {
		m.status = "Nothing here to grab (n creates an assignment)"
		return m, nil
	}
	if err := m.ctrl.BeginDrag(hits[0].ID); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("Grabbed %s (move, Enter drops, Esc cancels)", m.affairNumber(hits[0].AffairID))
	return m, nil
}

func (m *PlanModel) beginCreate(fullDay bool) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == planning.StateDragging {
		return m, nil
	}
	snap := m.store.Snapshot()
	workers := snap.Workers()
	affairs := snap.Affairs()
	if len(workers) == 0 || len(m.cells) == 0 {
		return m, nil
	}
	if len(affairs) == 0 {
		m.status = "No affairs in this window"
		return m, nil
	}
	if m.affairIdx >= len(affairs) {
		m.affairIdx = 0
	}

	cell := m.cells[m.cursorCell]
	candidate := domain.Assignment{
		WorkerID: workers[m.cursorRow].ID,
		AffairID: affairs[m.affairIdx].ID,
		Date:     cell.Date,
		StartMin: cell.StartMin,
		EndMin:   cell.EndMin,
		FullDay:  fullDay,
	}
	if err := m.ctrl.BeginCreate(candidate); err != nil {
		m.status = err.Error()
		return m, nil
	}
	if res, err := m.ctrl.UpdateTarget(candidate.WorkerID, cell); err == nil {
		m.status = dragStatus(m.ctrl.Candidate(), res)
	}
	return m, nil
}

func (m *PlanModel) commit() (tea.Model, tea.Cmd) {
	a, err := m.ctrl.Commit(context.Background(), m.app.Planning)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("Placed %s on %s", m.affairNumber(a.AffairID), a.Date.Format(domain.DateLayout))
	return m, nil
}

func (m *PlanModel) deleteUnderCursor() (tea.Model, tea.Cmd) {
	if m.ctrl.State() == planning.StateDragging {
		return m, nil
	}
	snap := m.store.Snapshot()
	workers := snap.Workers()
	if len(workers) == 0 || len(m.cells) == 0 {
		return m, nil
	}
	hits := snap.AssignmentsInCell(workers[m.cursorRow].ID, m.cells[m.cursorCell])
	if len(hits) == 0 {
		return m, nil
	}

	// Optimistic removal, restored if the write fails.
	prev := snap
	m.store.Remove(hits[0].ID)
	if err := m.app.Planning.DeleteAssignment(context.Background(), hits[0].ID); err != nil {
		m.store.Restore(prev)
		m.status = "Delete failed: " + err.Error()
		return m, nil
	}
	m.status = "Removed assignment"
	return m, nil
}

func (m *PlanModel) clampCursor() {
	workers := m.store.Snapshot().Workers()
	if len(workers) > 0 {
		m.cursorRow = clamp(m.cursorRow, 0, len(workers)-1)
	}
	if len(m.cells) > 0 {
		m.cursorCell = clamp(m.cursorCell, 0, len(m.cells)-1)
	}
}

func (m *PlanModel) affairNumber(id string) string {
	if a, ok := m.store.Snapshot().Affair(id); ok {
		return a.Number
	}
	return id
}

func dragStatus(candidate domain.Assignment, res planning.ValidationResult) string {
	where := fmt.Sprintf("%s %s-%s", candidate.Date.Format("Mon 02"),
		clockOf(candidate.StartMin), clockOf(candidate.EndMin))
	if candidate.FullDay {
		where = candidate.Date.Format("Mon 02") + " full day"
	}
	switch {
	case !res.IsValid:
		return where + "  " + res.Errors[0].Message
	case len(res.Warnings) > 0:
		return where + "  " + res.Warnings[0].Message
	default:
		return where + "  ok"
	}
}

func clockOf(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
