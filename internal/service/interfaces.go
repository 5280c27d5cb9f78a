package service

import (
	"context"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// WorkerService manages the worker roster.
type WorkerService interface {
	Create(ctx context.Context, w domain.Worker) (domain.Worker, error)
	Get(ctx context.Context, id string) (domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	Update(ctx context.Context, w domain.Worker) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

// AffairService manages affairs, their phases and status lifecycle.
type AffairService interface {
	Create(ctx context.Context, a domain.Affair) (domain.Affair, error)
	Get(ctx context.Context, id string) (domain.Affair, error)
	GetByNumber(ctx context.Context, number string) (domain.Affair, error)
	List(ctx context.Context) ([]domain.Affair, error)
	ListOverlapping(ctx context.Context, window domain.DateWindow) ([]domain.Affair, error)
	Update(ctx context.Context, a domain.Affair) error
	ChangeStatus(ctx context.Context, id string, to domain.AffairStatus, from time.Time) error
	AddPhase(ctx context.Context, affairID string, p domain.Phase) (domain.Phase, error)
	UpdatePhase(ctx context.Context, p domain.Phase) error
	DeletePhase(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ImportResult summarizes a completed site-file import.
type ImportResult struct {
	WorkerCount int
	AffairCount int
	PhaseCount  int
}

// ImportService loads a site file and writes its roster and affairs in a
// single transaction.
type ImportService interface {
	ImportSiteFile(ctx context.Context, path string) (*ImportResult, error)
}

// PlanningService exposes the persistence boundary the planning engine
// loads from and commits to. It satisfies planning.ReadPort and
// planning.WritePort.
type PlanningService interface {
	FetchCalendarConfig(ctx context.Context) (domain.CalendarConfig, error)
	FetchWorkers(ctx context.Context) ([]domain.Worker, error)
	FetchAffairs(ctx context.Context, window domain.DateWindow) ([]domain.Affair, error)
	FetchAssignments(ctx context.Context, window domain.DateWindow) ([]domain.Assignment, error)
	PersistAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	UpdateCalendarConfig(ctx context.Context, cfg domain.CalendarConfig) error
}
