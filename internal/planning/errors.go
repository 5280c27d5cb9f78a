// Package planning implements the interactive team-planning engine: the
// in-memory schedule store, the placement conflict detector, the drag/drop
// state machine and the working-hours calendar derivation.
package planning

import "errors"

var (
	// ErrLoad indicates reference data could not be fetched; the store
	// keeps its prior state and the operation is retryable.
	ErrLoad = errors.New("loading schedule window failed")

	// ErrConfig indicates a malformed calendar configuration. The grid
	// cannot render; fatal to the planning session.
	ErrConfig = errors.New("invalid calendar configuration")

	// ErrInvalidPlacement indicates a commit was attempted while hard
	// validation errors exist. The drag stays active.
	ErrInvalidPlacement = errors.New("placement has unresolved conflicts")

	// ErrPersistence indicates the remote write failed after the
	// optimistic local mutation; the store has been rolled back.
	ErrPersistence = errors.New("persisting assignment failed")

	// ErrNotDragging indicates a gesture operation outside an active drag.
	ErrNotDragging = errors.New("no drag in progress")
)
