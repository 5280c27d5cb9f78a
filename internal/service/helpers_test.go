package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
	"github.com/Dodibois40/atelier-planning/internal/testutil"
)

type serviceEnv struct {
	db       *sql.DB
	workers  WorkerService
	affairs  AffairService
	planning PlanningService

	workerRepo     repository.WorkerRepo
	assignmentRepo repository.AssignmentRepo
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	workerRepo := repository.NewSQLiteWorkerRepo(database)
	affairRepo := repository.NewSQLiteAffairRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	configRepo := repository.NewSQLiteCalendarConfigRepo(database)
	uow := testutil.NewTestUoW(database)

	return &serviceEnv{
		db:             database,
		workers:        NewWorkerService(workerRepo, nil),
		affairs:        NewAffairService(affairRepo, assignmentRepo, uow),
		planning:       NewPlanningService(workerRepo, affairRepo, assignmentRepo, configRepo),
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// createWorker inserts a worker through the service and returns it.
func (e *serviceEnv) createWorker(t *testing.T, name string) domain.Worker {
	t.Helper()
	w, err := e.workers.Create(context.Background(), domain.Worker{
		Name: name,
		Role: domain.RoleWorkshop,
	})
	require.NoError(t, err)
	return w
}

// createAffair inserts a January affair through the service.
func (e *serviceEnv) createAffair(t *testing.T, number string) domain.Affair {
	t.Helper()
	a, err := e.affairs.Create(context.Background(), domain.Affair{
		Number:    number,
		Client:    "Dupont",
		Label:     "Kitchen refit",
		StartDate: date(2025, 1, 6),
		EndDate:   date(2025, 1, 31),
	})
	require.NoError(t, err)
	return a
}
