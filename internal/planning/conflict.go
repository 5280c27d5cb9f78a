package planning

import (
	"fmt"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

type IssueCode string

const (
	IssueUnknownWorker     IssueCode = "UNKNOWN_WORKER"
	IssueUnknownAffair     IssueCode = "UNKNOWN_AFFAIR"
	IssueUnknownPhase      IssueCode = "UNKNOWN_PHASE"
	IssueEmptySpan         IssueCode = "EMPTY_SPAN"
	IssueAffairClosed      IssueCode = "AFFAIR_CLOSED"
	IssueWorkerUnavailable IssueCode = "WORKER_UNAVAILABLE"
	IssueWorkerOverlap     IssueCode = "WORKER_OVERLAP"
	IssueCapacityExceeded  IssueCode = "CAPACITY_EXCEEDED"
	IssueNonWorkingDay     IssueCode = "NON_WORKING_DAY"
	IssueOutsideHours      IssueCode = "OUTSIDE_WORKING_HOURS"
	IssueOutsideAffair     IssueCode = "OUTSIDE_AFFAIR_DATES"
	IssueOutsidePhase      IssueCode = "OUTSIDE_PHASE_DATES"
)

type Issue struct {
	Code    IssueCode
	Message string
}

// ValidationResult is the outcome of checking one candidate placement.
// Hard errors block a commit; warnings flag questionable but legitimate
// placements (overtime, weekend work).
type ValidationResult struct {
	IsValid     bool
	Errors      []Issue
	Warnings    []Issue
	Conflicting []string // ids of assignments occupying the requested span

	// Seq tags the UpdateTarget call this result answers; stale results
	// are discarded by the drag controller.
	Seq uint64
}

// Validate answers whether candidate can be placed given the snapshot and
// calendar configuration. Pure: same inputs, same result. Rules run in
// order and stop at the first hard error; warnings accumulate.
func Validate(candidate domain.Assignment, snap *Snapshot, cfg domain.CalendarConfig) ValidationResult {
	res := ValidationResult{IsValid: true}

	hard := func(code IssueCode, format string, args ...interface{}) ValidationResult {
		res.IsValid = false
		res.Errors = append(res.Errors, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
		return res
	}
	warn := func(code IssueCode, format string, args ...interface{}) {
		res.Warnings = append(res.Warnings, Issue{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	worker, ok := snap.Worker(candidate.WorkerID)
	if !ok {
		return hard(IssueUnknownWorker, "worker %s is not in the loaded window", candidate.WorkerID)
	}
	affair, ok := snap.Affair(candidate.AffairID)
	if !ok {
		return hard(IssueUnknownAffair, "affair %s is not in the loaded window", candidate.AffairID)
	}
	var phase *domain.Phase
	if candidate.PhaseID != "" {
		if phase = affair.Phase(candidate.PhaseID); phase == nil {
			return hard(IssueUnknownPhase, "affair %s has no phase %s", affair.Number, candidate.PhaseID)
		}
	}
	start, end := candidate.Span(cfg)
	if end <= start {
		return hard(IssueEmptySpan, "assignment span %d..%d is empty", start, end)
	}

	if affair.Status == domain.AffairCancelled || affair.Status == domain.AffairDone {
		return hard(IssueAffairClosed, "affair %s is %s and can hold no assignments", affair.Number, affair.Status)
	}

	// Rule 1: worker availability for the requested span.
	if !worker.Available {
		return hard(IssueWorkerUnavailable, "worker %s is flagged unavailable", worker.Name)
	}
	sameDay := snap.Query(Filter{WorkerID: candidate.WorkerID, Date: &candidate.Date})
	if !cfg.OverlapAllowed {
		for _, existing := range sameDay {
			if existing.ID == candidate.ID {
				continue
			}
			if existing.Overlaps(candidate, cfg) {
				res.Conflicting = append(res.Conflicting, existing.ID)
			}
		}
		if len(res.Conflicting) > 0 {
			return hard(IssueWorkerOverlap, "worker %s already occupied by %d assignment(s) in that span",
				worker.Name, len(res.Conflicting))
		}
	}

	// Rule 2: concurrent-affair capacity for the worker's day.
	affairSet := map[string]bool{candidate.AffairID: true}
	for _, existing := range sameDay {
		if existing.ID == candidate.ID {
			continue
		}
		affairSet[existing.AffairID] = true
	}
	if len(affairSet) > cfg.MaxConcurrentAffairs {
		return hard(IssueCapacityExceeded, "worker %s would carry %d concurrent affairs (max %d)",
			worker.Name, len(affairSet), cfg.MaxConcurrentAffairs)
	}

	// Rule 3: calendar fit. Overtime and weekend work are legitimate, so
	// these are warnings unless the affair is flagged for outside hours.
	if !affair.OutsideHours {
		if !cfg.IsWorkingDay(candidate.Date) {
			warn(IssueNonWorkingDay, "%s is not a working day", candidate.Date.Format(domain.DateLayout))
		}
		if !candidate.FullDay && !cfg.WithinWorkingHours(start, end) {
			warn(IssueOutsideHours, "span %02d:%02d-%02d:%02d falls outside working hours",
				start/60, start%60, end/60, end%60)
		}
	}

	// Rule 4: date containment. A placement outside the affair or phase
	// range would make the stored data inconsistent.
	if !affair.ContainsDate(candidate.Date) {
		return hard(IssueOutsideAffair, "date %s outside affair %s range %s..%s",
			candidate.Date.Format(domain.DateLayout), affair.Number,
			affair.StartDate.Format(domain.DateLayout), affair.EndDate.Format(domain.DateLayout))
	}
	if phase != nil {
		if err := phase.ValidateWithin(&affair); err != nil {
			return hard(IssueOutsidePhase, "%v", err)
		}
		if !phase.ContainsDate(candidate.Date) {
			return hard(IssueOutsidePhase, "date %s outside phase %s range %s..%s",
				candidate.Date.Format(domain.DateLayout), phase.Name,
				phase.StartDate.Format(domain.DateLayout), phase.EndDate.Format(domain.DateLayout))
		}
	}

	return res
}

// HasHardErrors reports whether the result blocks a commit.
func (r ValidationResult) HasHardErrors() bool {
	return len(r.Errors) > 0
}
