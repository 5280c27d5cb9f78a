package planning

import (
	"context"
	"fmt"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// Store is the authoritative in-memory schedule for the loaded planning
// window. It is owned by a single session; all mutation goes through it.
type Store struct {
	snap *Snapshot
}

// NewStore creates an empty store. Load must succeed before the store can
// serve snapshots.
func NewStore() *Store {
	return &Store{}
}

// Loaded reports whether a window has been loaded.
func (s *Store) Loaded() bool {
	return s.snap != nil
}

// Snapshot returns the current snapshot. Nil before the first Load.
func (s *Store) Snapshot() *Snapshot {
	return s.snap
}

// Load replaces the store's state with the given window fetched from src.
// On any failure the prior state is kept intact: the fetched window is
// assembled fully before the swap. Fetch failures wrap ErrLoad, a bad
// calendar configuration wraps ErrConfig.
func (s *Store) Load(ctx context.Context, window domain.DateWindow, src ReadPort) error {
	cfg, err := src.FetchCalendarConfig(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching calendar config: %v", ErrLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	workers, err := src.FetchWorkers(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching workers: %v", ErrLoad, err)
	}
	affairs, err := src.FetchAffairs(ctx, window)
	if err != nil {
		return fmt.Errorf("%w: fetching affairs: %v", ErrLoad, err)
	}
	assignments, err := src.FetchAssignments(ctx, window)
	if err != nil {
		return fmt.Errorf("%w: fetching assignments: %v", ErrLoad, err)
	}

	s.snap = newSnapshot(window, cfg, workers, affairs, assignments)
	return nil
}

// Upsert inserts or replaces an assignment by id and returns the new
// snapshot. The previous snapshot remains valid for diffing and rollback.
func (s *Store) Upsert(a domain.Assignment) *Snapshot {
	s.snap = s.snap.withAssignment(a)
	return s.snap
}

// Remove deletes an assignment by id. Absent ids are a no-op.
func (s *Store) Remove(id string) *Snapshot {
	s.snap = s.snap.withoutAssignment(id)
	return s.snap
}

// Restore resets the store to a previously obtained snapshot. Used to roll
// back an optimistic mutation after a failed remote persist.
func (s *Store) Restore(snap *Snapshot) {
	s.snap = snap
}
