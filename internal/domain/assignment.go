package domain

import "time"

// Assignment places a worker on an affair (or one of its phases) for part of
// a day, or the whole working day. It is the unit the planning grid creates,
// moves and deletes.
type Assignment struct {
	ID       string
	WorkerID string
	AffairID string
	// PhaseID narrows the assignment to a single phase; empty means the
	// whole affair.
	PhaseID string

	Date time.Time // timezone-naive local day

	// StartMin/EndMin are minutes from midnight; meaningless when FullDay.
	StartMin int
	EndMin   int
	FullDay  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateKey returns the YYYY-MM-DD index key for the assignment's day.
func (a Assignment) DateKey() string {
	return a.Date.Format(DateLayout)
}

// Span returns the occupied [start, end) minute window. Full-day assignments
// expand to the configured working hours.
func (a Assignment) Span(cfg CalendarConfig) (int, int) {
	if a.FullDay {
		return cfg.WorkStartMin, cfg.WorkEndMin
	}
	return a.StartMin, a.EndMin
}

// DurationMin returns the assignment's length in minutes.
func (a Assignment) DurationMin(cfg CalendarConfig) int {
	start, end := a.Span(cfg)
	return end - start
}

// Overlaps reports whether two assignments on the same worker and day occupy
// intersecting time. Callers are responsible for the worker/day check.
func (a Assignment) Overlaps(b Assignment, cfg CalendarConfig) bool {
	aStart, aEnd := a.Span(cfg)
	bStart, bEnd := b.Span(cfg)
	return aStart < bEnd && bStart < aEnd
}
