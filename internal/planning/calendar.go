package planning

import (
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// PlanningCell is one addressable (date, time-slot) unit of the grid. Cells
// are pure projections of the window and configuration; they carry no
// identity and are recomputed whenever either changes.
type PlanningCell struct {
	Date      time.Time
	SlotIndex int
	StartMin  int
	EndMin    int

	IsWeekend bool
	IsToday   bool
	Disabled  bool
}

// SlotsPerDay returns how many slots the working hours divide into. A
// fractional division breaks grid alignment and wraps ErrConfig.
func SlotsPerDay(cfg domain.CalendarConfig) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return (cfg.WorkEndMin - cfg.WorkStartMin) / cfg.SlotMin, nil
}

// CellsFor derives the full cell grid for the window: one cell per
// (date, slot). Non-working days are produced disabled rather than omitted
// so the rendered week stays visually complete. today is passed explicitly
// to keep the derivation deterministic.
func CellsFor(window domain.DateWindow, cfg domain.CalendarConfig, today time.Time) ([]PlanningCell, error) {
	slots, err := SlotsPerDay(cfg)
	if err != nil {
		return nil, err
	}

	var cells []PlanningCell
	for _, d := range window.Days() {
		weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		working := cfg.IsWorkingDay(d)
		for i := 0; i < slots; i++ {
			cells = append(cells, PlanningCell{
				Date:      d,
				SlotIndex: i,
				StartMin:  cfg.WorkStartMin + i*cfg.SlotMin,
				EndMin:    cfg.WorkStartMin + (i+1)*cfg.SlotMin,
				IsWeekend: weekend,
				IsToday:   domain.SameDay(d, today),
				Disabled:  !working,
			})
		}
	}
	return cells, nil
}

// AssignmentsInCell returns the worker's assignments whose span intersects
// the cell, ordered as Query orders them.
func (s *Snapshot) AssignmentsInCell(workerID string, cell PlanningCell) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range s.Query(Filter{WorkerID: workerID, Date: &cell.Date}) {
		start, end := a.Span(s.Config)
		if start < cell.EndMin && cell.StartMin < end {
			out = append(out, a)
		}
	}
	return out
}

// Occupancy returns how many distinct affairs the worker carries on a day.
func (s *Snapshot) Occupancy(workerID string, day time.Time) int {
	affairs := map[string]bool{}
	for _, a := range s.Query(Filter{WorkerID: workerID, Date: &day}) {
		affairs[a.AffairID] = true
	}
	return len(affairs)
}
