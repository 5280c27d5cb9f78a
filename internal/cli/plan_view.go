package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

const cellWidth = 11

var (
	styleCursor    = lipgloss.NewStyle().Reverse(true)
	styleCandidate = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	styleToday     = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	styleOffDay    = formatter.StyleDim
)

func (m *PlanModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n" +
			formatter.StyleDim.Render("r retries, q quits") + "\n"
	}
	if len(m.cells) == 0 {
		return formatter.StyleDim.Render("Loading planning...") + "\n"
	}

	snap := m.store.Snapshot()
	workers := snap.Workers()
	days := m.window.Days()

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewDayRow(days))

	for row, w := range workers {
		b.WriteString(m.viewWorkerRow(snap, row, w, days))
	}

	b.WriteString("\n" + m.viewStatusBar())
	if m.showStats {
		b.WriteString("\n" + formatter.FormatWeekStats(planning.WeekStats(snap, m.cfg, m.window), m.window))
	}
	return b.String()
}

func (m *PlanModel) viewHeader() string {
	title := formatter.StyleHeader.Render("Planning") + "  " +
		formatter.StyleDim.Render(m.window.From.Format(domain.DateLayout)+" -> "+m.window.To.Format(domain.DateLayout))
	help := formatter.StyleDim.Render("space grab/drop · n new · N full day · a affair · x delete · [ ] week · s stats · q quit")
	return title + "\n" + help + "\n\n"
}

func (m *PlanModel) viewDayRow(days []time.Time) string {
	var b strings.Builder
	b.WriteString(padCell("", 14))
	for i, d := range days {
		label := d.Format("Mon 02")
		cell := m.cells[i*m.slots]
		switch {
		case cell.IsToday:
			label = styleToday.Render(label)
		case cell.Disabled:
			label = styleOffDay.Render(label)
		default:
			label = formatter.StyleBold.Render(label)
		}
		b.WriteString(padCell(label, cellWidth))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *PlanModel) viewWorkerRow(snap *planning.Snapshot, row int, w domain.Worker, days []time.Time) string {
	var b strings.Builder
	b.WriteString(padCell(formatter.WorkerSwatch(w), 14))

	cursorDay := m.cursorCell / m.slots
	dragging := m.ctrl.State() == planning.StateDragging
	candidate := m.ctrl.Candidate()

	for dayIdx, d := range days {
		b.WriteString(padCell(m.renderCell(snap, w, d, dragging, candidate, row == m.cursorRow && dayIdx == cursorDay), cellWidth))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *PlanModel) renderCell(snap *planning.Snapshot, w domain.Worker, d time.Time, dragging bool, candidate domain.Assignment, underCursor bool) string {
	day := d
	placed := snap.Query(planning.Filter{WorkerID: w.ID, Date: &day})

	labels := make([]string, 0, len(placed))
	for _, a := range placed {
		if dragging && a.ID == candidate.ID {
			continue // shown at its candidate position instead
		}
		labels = append(labels, m.affairNumber(a.AffairID))
	}
	content := strings.Join(labels, ",")
	if content == "" {
		content = "·"
	}

	if dragging && candidate.WorkerID == w.ID && domain.SameDay(candidate.Date, d) {
		ghost := m.affairNumber(candidate.AffairID) + "*"
		if content != "·" {
			content += "," + ghost
		} else {
			content = ghost
		}
		return styleCandidate.Render(truncate(content, cellWidth-1))
	}
	if underCursor {
		return styleCursor.Render(truncate(content, cellWidth-1))
	}
	if len(placed) == 0 {
		return formatter.StyleDim.Render(content)
	}
	return truncate(content, cellWidth-1)
}

func (m *PlanModel) viewStatusBar() string {
	cell := m.cells[m.cursorCell]
	pos := fmt.Sprintf("%s %s-%s", cell.Date.Format("Mon 02"), clockOf(cell.StartMin), clockOf(cell.EndMin))

	state := formatter.StyleDim.Render(m.ctrl.State().String())
	if m.ctrl.State() == planning.StateDragging {
		state = styleCandidate.Render("dragging")
	}

	status := m.status
	if res := m.ctrl.LastResult(); res != nil {
		switch {
		case !res.IsValid:
			status = formatter.StyleRed.Render(m.status)
		case len(res.Warnings) > 0:
			status = formatter.StyleYellow.Render(m.status)
		}
	}
	return fmt.Sprintf("%s  %s  %s\n", formatter.StyleDim.Render(pos), state, status)
}

func padCell(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad < 1 {
		pad = 1
	}
	return s + strings.Repeat(" ", pad)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
