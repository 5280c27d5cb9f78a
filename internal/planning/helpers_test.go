package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// stubPort is an in-memory ReadPort/WritePort for engine tests.
type stubPort struct {
	cfg         domain.CalendarConfig
	workers     []domain.Worker
	affairs     []domain.Affair
	assignments []domain.Assignment

	failFetch   bool
	failPersist bool
	persisted   []domain.Assignment
	deleted     []string
}

var errStub = errors.New("stub transport failure")

func (p *stubPort) FetchCalendarConfig(ctx context.Context) (domain.CalendarConfig, error) {
	if p.failFetch {
		return domain.CalendarConfig{}, errStub
	}
	return p.cfg, nil
}

func (p *stubPort) FetchWorkers(ctx context.Context) ([]domain.Worker, error) {
	if p.failFetch {
		return nil, errStub
	}
	return p.workers, nil
}

func (p *stubPort) FetchAffairs(ctx context.Context, w domain.DateWindow) ([]domain.Affair, error) {
	if p.failFetch {
		return nil, errStub
	}
	return p.affairs, nil
}

func (p *stubPort) FetchAssignments(ctx context.Context, w domain.DateWindow) ([]domain.Assignment, error) {
	if p.failFetch {
		return nil, errStub
	}
	return p.assignments, nil
}

func (p *stubPort) PersistAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	if p.failPersist {
		return domain.Assignment{}, errStub
	}
	p.persisted = append(p.persisted, a)
	return a, nil
}

func (p *stubPort) DeleteAssignment(ctx context.Context, id string) error {
	if p.failPersist {
		return errStub
	}
	p.deleted = append(p.deleted, id)
	return nil
}

// testPort builds the standard fixture: worker Marc with an 08:00-12:00
// assignment on Wednesday 2025-01-15, affair MEN-001 spanning January.
func testPort() *stubPort {
	return &stubPort{
		cfg: domain.DefaultCalendarConfig(),
		workers: []domain.Worker{
			{ID: "w-marc", Name: "Marc", Role: domain.RoleWorkshop, Available: true, Contract: domain.ContractEmployee},
			{ID: "w-julie", Name: "Julie", Role: domain.RoleInstaller, Available: true, Contract: domain.ContractEmployee},
			{ID: "w-rene", Name: "René", Role: domain.RoleForeman, Available: false, Contract: domain.ContractEmployee},
		},
		affairs: []domain.Affair{
			{
				ID: "af-1", Number: "MEN-001", Client: "Dupont", Label: "Kitchen refit",
				Status: domain.AffairInProgress, Priority: domain.PriorityNormal,
				StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 31),
				Phases: []domain.Phase{
					{ID: "ph-fab", AffairID: "af-1", Name: "fabrication", Type: "fabrication", Seq: 1,
						StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 17)},
					{ID: "ph-pose", AffairID: "af-1", Name: "installation", Type: "installation", Seq: 2,
						StartDate: day(2025, 1, 20), EndDate: day(2025, 1, 31)},
				},
			},
			{
				ID: "af-2", Number: "MEN-002", Client: "Martin", Label: "Oak staircase",
				Status: domain.AffairPlanned, Priority: domain.PriorityHigh,
				StartDate: day(2025, 1, 6), EndDate: day(2025, 2, 28),
			},
			{
				ID: "af-3", Number: "MEN-003", Client: "Leroy", Label: "Shopfront",
				Status: domain.AffairCancelled, Priority: domain.PriorityLow,
				StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 31),
			},
		},
		assignments: []domain.Assignment{
			{ID: "as-1", WorkerID: "w-marc", AffairID: "af-1", PhaseID: "ph-fab",
				Date: day(2025, 1, 15), StartMin: 8 * 60, EndMin: 12 * 60},
		},
	}
}

func loadedStore(t *testing.T, port *stubPort) *Store {
	t.Helper()
	store := NewStore()
	window := domain.DateWindow{From: day(2025, 1, 13), To: day(2025, 1, 19)}
	require.NoError(t, store.Load(context.Background(), window, port))
	return store
}
