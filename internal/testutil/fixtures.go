package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/google/uuid"
)

var affairNumberCounter atomic.Int64

// Worker options
type WorkerOption func(*domain.Worker)

func WithRole(r domain.Role) WorkerOption {
	return func(w *domain.Worker) {
		w.Role = r
	}
}

func Unavailable() WorkerOption {
	return func(w *domain.Worker) {
		w.Available = false
	}
}

func WithContract(c domain.ContractType) WorkerOption {
	return func(w *domain.Worker) {
		w.Contract = c
	}
}

func NewTestWorker(name string, opts ...WorkerOption) *domain.Worker {
	now := time.Now().UTC()
	w := &domain.Worker{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      domain.RoleWorkshop,
		Color:     domain.ColorFor(0, domain.DefaultPalette),
		Available: true,
		Contract:  domain.ContractEmployee,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Affair options
type AffairOption func(*domain.Affair)

func WithStatus(s domain.AffairStatus) AffairOption {
	return func(a *domain.Affair) {
		a.Status = s
	}
}

func WithDates(start, end time.Time) AffairOption {
	return func(a *domain.Affair) {
		a.StartDate = start
		a.EndDate = end
	}
}

func WithOutsideHours() AffairOption {
	return func(a *domain.Affair) {
		a.OutsideHours = true
	}
}

func WithPhase(name, phaseType string, start, end time.Time) AffairOption {
	return func(a *domain.Affair) {
		now := time.Now().UTC()
		a.Phases = append(a.Phases, domain.Phase{
			ID:        uuid.New().String(),
			AffairID:  a.ID,
			Name:      name,
			Type:      phaseType,
			Seq:       len(a.Phases) + 1,
			StartDate: start,
			EndDate:   end,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
}

func NewTestAffair(label string, opts ...AffairOption) *domain.Affair {
	now := time.Now().UTC()
	a := &domain.Affair{
		ID:        uuid.New().String(),
		Number:    fmt.Sprintf("TST-%03d", affairNumberCounter.Add(1)),
		Client:    "Test Client",
		Label:     label,
		Status:    domain.AffairPlanned,
		Priority:  domain.PriorityNormal,
		StartDate: domain.DateOnly(now.AddDate(0, -1, 0)),
		EndDate:   domain.DateOnly(now.AddDate(0, 2, 0)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestAssignment places a worker on an affair for the given day and
// hour span.
func NewTestAssignment(workerID, affairID string, day time.Time, startHour, endHour int) *domain.Assignment {
	now := time.Now().UTC()
	return &domain.Assignment{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		AffairID:  affairID,
		Date:      domain.DateOnly(day),
		StartMin:  startHour * 60,
		EndMin:    endHour * 60,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
