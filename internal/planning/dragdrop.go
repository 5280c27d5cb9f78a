package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// persistTimeout bounds the remote write triggered by Commit. Past it the
// optimistic local mutation is rolled back and the gesture is retryable.
const persistTimeout = 10 * time.Second

type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Controller turns a pointer/key gesture sequence into a single atomic
// assignment mutation. One controller per planning session; it owns the
// ephemeral drag state and discards it on commit or cancel.
type Controller struct {
	store *Store

	state     DragState
	candidate domain.Assignment
	original  domain.Assignment
	creating  bool

	// seq stamps each UpdateTarget; only the most recent validation is
	// authoritative, landed async results with older stamps are dropped.
	seq  uint64
	last *ValidationResult
}

// NewController creates an idle controller over the given store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// State returns the current gesture state.
func (c *Controller) State() DragState {
	return c.state
}

// Candidate returns the in-flight assignment position. Only meaningful
// while dragging.
func (c *Controller) Candidate() domain.Assignment {
	return c.candidate
}

// LastResult returns the most recent authoritative validation, or nil.
func (c *Controller) LastResult() *ValidationResult {
	return c.last
}

// BeginDrag starts moving an assignment already placed in the store.
// Unknown ids leave the controller Idle.
func (c *Controller) BeginDrag(assignmentID string) error {
	if c.state != StateIdle {
		return fmt.Errorf("drag already in progress for %s", c.original.ID)
	}
	snap := c.store.Snapshot()
	if snap == nil {
		return fmt.Errorf("%w: no window loaded", ErrLoad)
	}
	a, ok := snap.Assignment(assignmentID)
	if !ok {
		return fmt.Errorf("assignment %s is not placed in the schedule", assignmentID)
	}
	c.state = StateDragging
	c.original = a
	c.candidate = a
	c.creating = false
	c.last = nil
	return nil
}

// BeginCreate starts placing a new assignment that does not exist in the
// store yet (dragging an affair or phase onto the grid). The affair must be
// loaded.
func (c *Controller) BeginCreate(a domain.Assignment) error {
	if c.state != StateIdle {
		return fmt.Errorf("drag already in progress for %s", c.original.ID)
	}
	snap := c.store.Snapshot()
	if snap == nil {
		return fmt.Errorf("%w: no window loaded", ErrLoad)
	}
	if _, ok := snap.Affair(a.AffairID); !ok {
		return fmt.Errorf("affair %s is not in the loaded window", a.AffairID)
	}
	c.state = StateDragging
	c.original = a
	c.candidate = a
	c.creating = true
	c.last = nil
	return nil
}

// UpdateTarget moves the hypothetical position to the hovered cell and
// worker row, preserving the assignment's duration, and re-validates.
// Idempotent and safe at pointer-move rate; no mutation happens here.
func (c *Controller) UpdateTarget(workerID string, cell PlanningCell) (ValidationResult, error) {
	if c.state != StateDragging {
		return ValidationResult{}, ErrNotDragging
	}
	snap := c.store.Snapshot()
	cfg := snap.Config

	c.candidate.WorkerID = workerID
	c.candidate.Date = domain.DateOnly(cell.Date)
	if !c.candidate.FullDay {
		dur := c.original.DurationMin(cfg)
		start := cell.StartMin
		if !cfg.SnapToGrid {
			start = clampInt(c.candidate.StartMin, cell.StartMin, cell.EndMin-dur)
		}
		c.candidate.StartMin = start
		c.candidate.EndMin = start + dur
	}

	c.seq++
	res := Validate(c.candidate, snap, cfg)
	res.Seq = c.seq
	c.last = &res
	return res, nil
}

// ApplyAsyncResult installs a validation produced out-of-band (for example
// a server-side conflict check). Results superseded by a newer
// UpdateTarget are discarded; returns whether the result was applied.
func (c *Controller) ApplyAsyncResult(res ValidationResult) bool {
	if c.state != StateDragging || res.Seq < c.seq {
		return false
	}
	c.last = &res
	return true
}

// Commit atomically applies the candidate position: local upsert first,
// then the remote write under a bounded timeout. Hard validation errors
// fail with ErrInvalidPlacement and leave the drag active so the user can
// keep adjusting. A failed remote write rolls the store back to the
// pre-commit snapshot and wraps ErrPersistence.
func (c *Controller) Commit(ctx context.Context, writer WritePort) (domain.Assignment, error) {
	if c.state != StateDragging {
		return domain.Assignment{}, ErrNotDragging
	}

	snap := c.store.Snapshot()
	res := Validate(c.candidate, snap, snap.Config)
	res.Seq = c.seq
	c.last = &res
	if res.HasHardErrors() {
		return domain.Assignment{}, fmt.Errorf("%w: %s", ErrInvalidPlacement, res.Errors[0].Message)
	}

	committed := c.candidate
	committed.UpdatedAt = time.Now().UTC()
	if c.creating && committed.CreatedAt.IsZero() {
		committed.CreatedAt = committed.UpdatedAt
	}

	prev := c.store.Snapshot()
	c.store.Upsert(committed)

	if writer != nil {
		pctx, cancel := context.WithTimeout(ctx, persistTimeout)
		defer cancel()
		persisted, err := writer.PersistAssignment(pctx, committed)
		if err != nil {
			c.store.Restore(prev)
			return domain.Assignment{}, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if persisted.ID != "" && persisted.ID != committed.ID {
			// Server assigned the canonical id; replace the local row.
			c.store.Remove(committed.ID)
			c.store.Upsert(persisted)
			committed = persisted
		}
	}

	c.reset()
	return committed, nil
}

// Cancel discards the drag session without touching the store.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.candidate = domain.Assignment{}
	c.original = domain.Assignment{}
	c.creating = false
	c.last = nil
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
