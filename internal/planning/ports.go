package planning

import (
	"context"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// ReadPort fetches reference data for a schedule window. Implementations
// must return entities already normalized: timezone-naive local dates,
// phases attached to their affairs.
type ReadPort interface {
	FetchCalendarConfig(ctx context.Context) (domain.CalendarConfig, error)
	FetchWorkers(ctx context.Context) ([]domain.Worker, error)
	FetchAffairs(ctx context.Context, window domain.DateWindow) ([]domain.Affair, error)
	FetchAssignments(ctx context.Context, window domain.DateWindow) ([]domain.Assignment, error)
}

// WritePort persists assignment mutations after they have been applied
// locally. Failures trigger a rollback of the optimistic local change.
type WritePort interface {
	PersistAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}
