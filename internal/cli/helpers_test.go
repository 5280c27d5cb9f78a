package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
	"github.com/Dodibois40/atelier-planning/internal/service"
	"github.com/Dodibois40/atelier-planning/internal/testutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// newTestApp wires an App over an in-memory database.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	workerRepo := repository.NewSQLiteWorkerRepo(database)
	affairRepo := repository.NewSQLiteAffairRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	configRepo := repository.NewSQLiteCalendarConfigRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Workers:       service.NewWorkerService(workerRepo, nil),
		Affairs:       service.NewAffairService(affairRepo, assignmentRepo, uow),
		Planning:      service.NewPlanningService(workerRepo, affairRepo, assignmentRepo, configRepo),
		Import:        service.NewImportService(uow),
		IsInteractive: func() bool { return true },
	}
}

// seedPlanning adds Marc and Julie, affair MEN-001 spanning January 2025,
// and one assignment for Marc on Wednesday the 15th.
func seedPlanning(t *testing.T, app *App) (marc, julie domain.Worker, affair domain.Affair, placed domain.Assignment) {
	t.Helper()
	ctx := context.Background()

	var err error
	marc, err = app.Workers.Create(ctx, domain.Worker{Name: "Marc", Role: domain.RoleWorkshop})
	require.NoError(t, err)
	julie, err = app.Workers.Create(ctx, domain.Worker{Name: "Julie", Role: domain.RoleInstaller})
	require.NoError(t, err)

	affair, err = app.Affairs.Create(ctx, domain.Affair{
		Number: "MEN-001", Client: "Dupont", Label: "Kitchen refit",
		StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 31),
	})
	require.NoError(t, err)

	placed, err = app.Planning.PersistAssignment(ctx, domain.Assignment{
		WorkerID: marc.ID, AffairID: affair.ID,
		Date: day(2025, 1, 15), StartMin: 8 * 60, EndMin: 12 * 60,
	})
	require.NoError(t, err)
	return marc, julie, affair, placed
}

func runCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.Execute()
}

func januaryWindow() domain.DateWindow {
	return domain.DateWindow{From: day(2025, 1, 13), To: day(2025, 1, 19)}
}

func fetchAssignments(t *testing.T, app *App) []domain.Assignment {
	t.Helper()
	got, err := app.Planning.FetchAssignments(context.Background(), januaryWindow())
	require.NoError(t, err)
	return got
}
