package planning

import (
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// WorkerStat summarizes one worker's load over a window: assigned minutes
// against the calendar capacity of the window's working days.
type WorkerStat struct {
	WorkerID    string
	Name        string
	AssignedMin int
	CapacityMin int
}

// Utilization returns assigned/capacity as a ratio; 0 when capacity is 0.
func (s WorkerStat) Utilization() float64 {
	if s.CapacityMin == 0 {
		return 0
	}
	return float64(s.AssignedMin) / float64(s.CapacityMin)
}

// WeekStats computes per-worker load for the window from the snapshot's
// assignments. Workers come back in name order, all of them, assigned or not.
func WeekStats(snap *Snapshot, cfg domain.CalendarConfig, window domain.DateWindow) []WorkerStat {
	capacity := 0
	for _, day := range window.Days() {
		if cfg.IsWorkingDay(day) {
			capacity += cfg.WorkEndMin - cfg.WorkStartMin
		}
	}

	stats := make([]WorkerStat, 0)
	for _, w := range snap.Workers() {
		assigned := 0
		for _, day := range window.Days() {
			d := day
			for _, a := range snap.Query(Filter{WorkerID: w.ID, Date: &d}) {
				assigned += a.DurationMin(cfg)
			}
		}
		stats = append(stats, WorkerStat{
			WorkerID:    w.ID,
			Name:        w.Name,
			AssignedMin: assigned,
			CapacityMin: capacity,
		})
	}
	return stats
}
