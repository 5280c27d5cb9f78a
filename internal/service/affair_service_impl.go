package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
)

// statusTransitions lists the allowed affair lifecycle moves. Done and
// cancelled are terminal.
var statusTransitions = map[domain.AffairStatus][]domain.AffairStatus{
	domain.AffairPlanned:    {domain.AffairInProgress, domain.AffairDone, domain.AffairCancelled},
	domain.AffairInProgress: {domain.AffairDone, domain.AffairCancelled},
	domain.AffairDone:       {},
	domain.AffairCancelled:  {},
}

type affairService struct {
	affairs     repository.AffairRepo
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
}

// NewAffairService creates an AffairService. The unit of work covers the
// cancellation path, where a status change and the purge of future
// assignments must land together.
func NewAffairService(affairs repository.AffairRepo, assignments repository.AssignmentRepo, uow db.UnitOfWork) AffairService {
	return &affairService{affairs: affairs, assignments: assignments, uow: uow}
}

func (s *affairService) Create(ctx context.Context, a domain.Affair) (domain.Affair, error) {
	if err := a.ValidateNumber(); err != nil {
		return domain.Affair{}, err
	}
	if err := a.ValidateDates(); err != nil {
		return domain.Affair{}, err
	}
	if a.Status == "" {
		a.Status = domain.AffairPlanned
	}
	if !domain.ValidAffairStatuses[a.Status] {
		return domain.Affair{}, fmt.Errorf("invalid affair status: %q", a.Status)
	}
	if a.Priority == "" {
		a.Priority = domain.PriorityNormal
	}

	a.ID = uuid.New().String()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	for i := range a.Phases {
		p := &a.Phases[i]
		p.ID = uuid.New().String()
		p.AffairID = a.ID
		p.Seq = i
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := p.ValidateWithin(&a); err != nil {
			return domain.Affair{}, err
		}
	}

	if err := s.affairs.Create(ctx, &a); err != nil {
		return domain.Affair{}, fmt.Errorf("creating affair %s: %w", a.Number, err)
	}
	return a, nil
}

func (s *affairService) Get(ctx context.Context, id string) (domain.Affair, error) {
	a, err := s.affairs.GetByID(ctx, id)
	if err != nil {
		return domain.Affair{}, err
	}
	return *a, nil
}

func (s *affairService) GetByNumber(ctx context.Context, number string) (domain.Affair, error) {
	a, err := s.affairs.GetByNumber(ctx, number)
	if err != nil {
		return domain.Affair{}, err
	}
	return *a, nil
}

func (s *affairService) List(ctx context.Context) ([]domain.Affair, error) {
	rows, err := s.affairs.List(ctx)
	if err != nil {
		return nil, err
	}
	return deref(rows), nil
}

func (s *affairService) ListOverlapping(ctx context.Context, window domain.DateWindow) ([]domain.Affair, error) {
	rows, err := s.affairs.ListOverlapping(ctx, window)
	if err != nil {
		return nil, err
	}
	return deref(rows), nil
}

func (s *affairService) Update(ctx context.Context, a domain.Affair) error {
	if a.ID == "" {
		return fmt.Errorf("affair id is required")
	}
	if err := a.ValidateNumber(); err != nil {
		return err
	}
	if err := a.ValidateDates(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now()
	return s.affairs.Update(ctx, &a)
}

// ChangeStatus moves the affair through its lifecycle. Cancelling removes
// the affair's assignments on or after the given day inside one
// transaction; past assignments are kept for the record.
func (s *affairService) ChangeStatus(ctx context.Context, id string, to domain.AffairStatus, from time.Time) error {
	a, err := s.affairs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !transitionAllowed(a.Status, to) {
		return fmt.Errorf("affair %s: cannot change status from %s to %s", a.Number, a.Status, to)
	}

	a.Status = to
	a.UpdatedAt = time.Now()

	if to != domain.AffairCancelled {
		return s.affairs.Update(ctx, a)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		affairs := repository.NewSQLiteAffairRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)

		if err := affairs.Update(ctx, a); err != nil {
			return err
		}
		day := domain.DateOnly(from).Format(domain.DateLayout)
		if _, err := assignments.DeleteByAffairFrom(ctx, id, day); err != nil {
			return fmt.Errorf("clearing assignments for cancelled affair %s: %w", a.Number, err)
		}
		return nil
	})
}

func (s *affairService) AddPhase(ctx context.Context, affairID string, p domain.Phase) (domain.Phase, error) {
	a, err := s.affairs.GetByID(ctx, affairID)
	if err != nil {
		return domain.Phase{}, err
	}

	p.ID = uuid.New().String()
	p.AffairID = a.ID
	p.Seq = len(a.Phases)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := p.ValidateWithin(a); err != nil {
		return domain.Phase{}, err
	}
	if err := s.affairs.CreatePhase(ctx, &p); err != nil {
		return domain.Phase{}, fmt.Errorf("creating phase %q: %w", p.Name, err)
	}
	return p, nil
}

func (s *affairService) UpdatePhase(ctx context.Context, p domain.Phase) error {
	if p.ID == "" || p.AffairID == "" {
		return fmt.Errorf("phase id and affair id are required")
	}
	a, err := s.affairs.GetByID(ctx, p.AffairID)
	if err != nil {
		return err
	}
	if err := p.ValidateWithin(a); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return s.affairs.UpdatePhase(ctx, &p)
}

func (s *affairService) DeletePhase(ctx context.Context, id string) error {
	return s.affairs.DeletePhase(ctx, id)
}

func (s *affairService) Delete(ctx context.Context, id string) error {
	return s.affairs.Delete(ctx, id)
}

func transitionAllowed(from, to domain.AffairStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func deref(rows []*domain.Affair) []domain.Affair {
	out := make([]domain.Affair, 0, len(rows))
	for _, a := range rows {
		out = append(out, *a)
	}
	return out
}
