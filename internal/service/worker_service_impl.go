package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
)

type workerService struct {
	workers repository.WorkerRepo
	palette []string
}

// NewWorkerService creates a WorkerService assigning planning colors from
// the given palette. A nil palette falls back to domain.DefaultPalette.
func NewWorkerService(workers repository.WorkerRepo, palette []string) WorkerService {
	if len(palette) == 0 {
		palette = domain.DefaultPalette
	}
	return &workerService{workers: workers, palette: palette}
}

func (s *workerService) Create(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	if w.Name == "" {
		return domain.Worker{}, fmt.Errorf("worker name is required")
	}
	if !domain.ValidRoles[string(w.Role)] {
		return domain.Worker{}, fmt.Errorf("invalid worker role: %q", w.Role)
	}
	if w.Contract == "" {
		w.Contract = domain.ContractEmployee
	}

	w.ID = uuid.New().String()
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	w.Available = true

	if w.Color == "" {
		existing, err := s.workers.List(ctx, true)
		if err != nil {
			return domain.Worker{}, fmt.Errorf("listing workers for color assignment: %w", err)
		}
		w.Color = domain.ColorFor(len(existing), s.palette)
	}

	if err := s.workers.Create(ctx, &w); err != nil {
		return domain.Worker{}, fmt.Errorf("creating worker: %w", err)
	}
	return w, nil
}

func (s *workerService) Get(ctx context.Context, id string) (domain.Worker, error) {
	w, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return domain.Worker{}, err
	}
	return *w, nil
}

func (s *workerService) List(ctx context.Context) ([]domain.Worker, error) {
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

func (s *workerService) Update(ctx context.Context, w domain.Worker) error {
	if w.ID == "" {
		return fmt.Errorf("worker id is required")
	}
	if !domain.ValidRoles[string(w.Role)] {
		return fmt.Errorf("invalid worker role: %q", w.Role)
	}
	w.UpdatedAt = time.Now()
	return s.workers.Update(ctx, &w)
}

func (s *workerService) SetAvailability(ctx context.Context, id string, available bool) error {
	w, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	w.Available = available
	w.UpdatedAt = time.Now()
	return s.workers.Update(ctx, w)
}

func (s *workerService) Delete(ctx context.Context, id string) error {
	return s.workers.Delete(ctx, id)
}
