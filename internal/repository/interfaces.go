package repository

import (
	"context"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context, includeUnavailable bool) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Delete(ctx context.Context, id string) error
}

type AffairRepo interface {
	Create(ctx context.Context, a *domain.Affair) error
	GetByID(ctx context.Context, id string) (*domain.Affair, error)
	GetByNumber(ctx context.Context, number string) (*domain.Affair, error)
	// ListOverlapping returns affairs whose date range intersects the
	// window, phases attached and ordered by seq.
	ListOverlapping(ctx context.Context, window domain.DateWindow) ([]*domain.Affair, error)
	List(ctx context.Context) ([]*domain.Affair, error)
	Update(ctx context.Context, a *domain.Affair) error
	Delete(ctx context.Context, id string) error

	CreatePhase(ctx context.Context, p *domain.Phase) error
	UpdatePhase(ctx context.Context, p *domain.Phase) error
	DeletePhase(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Upsert(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListInWindow(ctx context.Context, window domain.DateWindow) ([]*domain.Assignment, error)
	ListByAffair(ctx context.Context, affairID string) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id string) error
	// DeleteByAffairFrom removes the affair's assignments on or after the
	// given day; used when an affair is cancelled.
	DeleteByAffairFrom(ctx context.Context, affairID string, from string) (int, error)
}

type CalendarConfigRepo interface {
	Get(ctx context.Context) (domain.CalendarConfig, error)
	Update(ctx context.Context, cfg domain.CalendarConfig) error
}
