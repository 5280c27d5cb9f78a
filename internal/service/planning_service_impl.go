package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
)

type planningService struct {
	workers     repository.WorkerRepo
	affairs     repository.AffairRepo
	assignments repository.AssignmentRepo
	config      repository.CalendarConfigRepo
}

// NewPlanningService creates the persistence boundary the planning engine
// loads from and commits to.
func NewPlanningService(
	workers repository.WorkerRepo,
	affairs repository.AffairRepo,
	assignments repository.AssignmentRepo,
	config repository.CalendarConfigRepo,
) PlanningService {
	return &planningService{
		workers:     workers,
		affairs:     affairs,
		assignments: assignments,
		config:      config,
	}
}

func (s *planningService) FetchCalendarConfig(ctx context.Context) (domain.CalendarConfig, error) {
	return s.config.Get(ctx)
}

func (s *planningService) FetchWorkers(ctx context.Context) ([]domain.Worker, error) {
	rows, err := s.workers.List(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Worker, 0, len(rows))
	for _, w := range rows {
		out = append(out, *w)
	}
	return out, nil
}

func (s *planningService) FetchAffairs(ctx context.Context, window domain.DateWindow) ([]domain.Affair, error) {
	rows, err := s.affairs.ListOverlapping(ctx, window)
	if err != nil {
		return nil, err
	}
	return deref(rows), nil
}

func (s *planningService) FetchAssignments(ctx context.Context, window domain.DateWindow) ([]domain.Assignment, error) {
	rows, err := s.assignments.ListInWindow(ctx, window)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Assignment, 0, len(rows))
	for _, a := range rows {
		out = append(out, *a)
	}
	return out, nil
}

// PersistAssignment upserts the assignment, minting an id for new rows and
// returning the stored value.
func (s *planningService) PersistAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	if a.WorkerID == "" || a.AffairID == "" {
		return domain.Assignment{}, fmt.Errorf("assignment worker and affair are required")
	}
	now := time.Now()
	if a.ID == "" {
		a.ID = uuid.New().String()
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if err := s.assignments.Upsert(ctx, &a); err != nil {
		return domain.Assignment{}, err
	}
	return a, nil
}

func (s *planningService) DeleteAssignment(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}

func (s *planningService) UpdateCalendarConfig(ctx context.Context, cfg domain.CalendarConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.config.Update(ctx, cfg)
}
