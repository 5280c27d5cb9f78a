package planning

import (
	"sort"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// Snapshot is an immutable view of the loaded schedule window. Mutating
// operations return a successor snapshot and leave the receiver untouched,
// so holders of an older snapshot can diff or roll back cheaply.
type Snapshot struct {
	Window domain.DateWindow
	Config domain.CalendarConfig

	workers     map[string]domain.Worker
	affairs     map[string]domain.Affair
	assignments map[string]domain.Assignment

	// byWorkerDate indexes assignment ids by "workerID|YYYY-MM-DD".
	byWorkerDate map[string][]string
}

func workerDateKey(workerID string, day time.Time) string {
	return workerID + "|" + day.Format(domain.DateLayout)
}

func newSnapshot(window domain.DateWindow, cfg domain.CalendarConfig,
	workers []domain.Worker, affairs []domain.Affair, assignments []domain.Assignment) *Snapshot {

	s := &Snapshot{
		Window:       window,
		Config:       cfg,
		workers:      make(map[string]domain.Worker, len(workers)),
		affairs:      make(map[string]domain.Affair, len(affairs)),
		assignments:  make(map[string]domain.Assignment, len(assignments)),
		byWorkerDate: make(map[string][]string),
	}
	for _, w := range workers {
		s.workers[w.ID] = w
	}
	for _, a := range affairs {
		s.affairs[a.ID] = a
	}
	for _, a := range assignments {
		s.assignments[a.ID] = a
		key := workerDateKey(a.WorkerID, a.Date)
		s.byWorkerDate[key] = append(s.byWorkerDate[key], a.ID)
	}
	return s
}

// Worker returns the worker with the given id.
func (s *Snapshot) Worker(id string) (domain.Worker, bool) {
	w, ok := s.workers[id]
	return w, ok
}

// Affair returns the affair with the given id.
func (s *Snapshot) Affair(id string) (domain.Affair, bool) {
	a, ok := s.affairs[id]
	return a, ok
}

// Assignment returns the assignment with the given id.
func (s *Snapshot) Assignment(id string) (domain.Assignment, bool) {
	a, ok := s.assignments[id]
	return a, ok
}

// Workers returns all workers ordered by name, then id for stability.
func (s *Snapshot) Workers() []domain.Worker {
	out := make([]domain.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Affairs returns all affairs ordered by number.
func (s *Snapshot) Affairs() []domain.Affair {
	out := make([]domain.Affair, 0, len(s.affairs))
	for _, a := range s.affairs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Filter selects assignments by any combination of worker, day and affair.
// A zero field matches everything.
type Filter struct {
	WorkerID string
	Date     *time.Time
	AffairID string
}

// Query returns assignments matching the filter, ordered by start time then
// id. A worker+date query hits the composite index directly.
func (s *Snapshot) Query(f Filter) []domain.Assignment {
	var out []domain.Assignment

	if f.WorkerID != "" && f.Date != nil {
		for _, id := range s.byWorkerDate[workerDateKey(f.WorkerID, *f.Date)] {
			a := s.assignments[id]
			if f.AffairID == "" || a.AffairID == f.AffairID {
				out = append(out, a)
			}
		}
	} else {
		for _, a := range s.assignments {
			if f.WorkerID != "" && a.WorkerID != f.WorkerID {
				continue
			}
			if f.Date != nil && !domain.SameDay(a.Date, *f.Date) {
				continue
			}
			if f.AffairID != "" && a.AffairID != f.AffairID {
				continue
			}
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		si, _ := out[i].Span(s.Config)
		sj, _ := out[j].Span(s.Config)
		if si != sj {
			return si < sj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// withAssignment returns a successor snapshot with a inserted or replaced.
func (s *Snapshot) withAssignment(a domain.Assignment) *Snapshot {
	next := s.clone()
	if prev, ok := next.assignments[a.ID]; ok {
		next.dropFromIndex(prev)
	}
	next.assignments[a.ID] = a
	key := workerDateKey(a.WorkerID, a.Date)
	next.byWorkerDate[key] = append(next.byWorkerDate[key], a.ID)
	return next
}

// withoutAssignment returns a successor snapshot with id removed.
// Removing an absent id returns an equivalent copy, not an error.
func (s *Snapshot) withoutAssignment(id string) *Snapshot {
	prev, ok := s.assignments[id]
	if !ok {
		return s
	}
	next := s.clone()
	next.dropFromIndex(prev)
	delete(next.assignments, id)
	return next
}

func (s *Snapshot) clone() *Snapshot {
	next := &Snapshot{
		Window:       s.Window,
		Config:       s.Config,
		workers:      s.workers,
		affairs:      s.affairs,
		assignments:  make(map[string]domain.Assignment, len(s.assignments)+1),
		byWorkerDate: make(map[string][]string, len(s.byWorkerDate)+1),
	}
	for id, a := range s.assignments {
		next.assignments[id] = a
	}
	for k, ids := range s.byWorkerDate {
		next.byWorkerDate[k] = append([]string(nil), ids...)
	}
	return next
}

func (s *Snapshot) dropFromIndex(a domain.Assignment) {
	key := workerDateKey(a.WorkerID, a.Date)
	ids := s.byWorkerDate[key]
	for i, id := range ids {
		if id == a.ID {
			s.byWorkerDate[key] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.byWorkerDate[key]) == 0 {
		delete(s.byWorkerDate, key)
	}
}
