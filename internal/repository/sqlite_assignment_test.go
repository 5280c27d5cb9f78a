package repository_test

import (
	"context"
	"testing"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
	"github.com/Dodibois40/atelier-planning/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignmentFixture struct {
	workers     *repository.SQLiteWorkerRepo
	affairs     *repository.SQLiteAffairRepo
	assignments *repository.SQLiteAssignmentRepo
	worker      *domain.Worker
	affair      *domain.Affair
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &assignmentFixture{
		workers:     repository.NewSQLiteWorkerRepo(database),
		affairs:     repository.NewSQLiteAffairRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		worker:      testutil.NewTestWorker("Marc"),
		affair: testutil.NewTestAffair("Job",
			testutil.WithDates(date(2025, 1, 6), date(2025, 1, 31))),
	}
	ctx := context.Background()
	require.NoError(t, f.workers.Create(ctx, f.worker))
	require.NoError(t, f.affairs.Create(ctx, f.affair))
	return f
}

func TestAssignmentRepo_UpsertInsertsThenReplaces(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	a := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 15), 8, 12)
	require.NoError(t, f.assignments.Upsert(ctx, a))

	got, err := f.assignments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 8*60, got.StartMin)

	a.Date = date(2025, 1, 16)
	a.StartMin = 9 * 60
	a.EndMin = 13 * 60
	require.NoError(t, f.assignments.Upsert(ctx, a))

	got, err = f.assignments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 1, 16), got.Date)
	assert.Equal(t, 9*60, got.StartMin)
}

func TestAssignmentRepo_ListInWindow(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	inside := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 15), 8, 12)
	boundary := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 13), 8, 10)
	outside := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 22), 8, 10)
	for _, a := range []*domain.Assignment{inside, boundary, outside} {
		require.NoError(t, f.assignments.Upsert(ctx, a))
	}

	window := domain.DateWindow{From: date(2025, 1, 13), To: date(2025, 1, 19)}
	got, err := f.assignments.ListInWindow(ctx, window)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, boundary.ID, got[0].ID, "ordered by date")
	assert.Equal(t, inside.ID, got[1].ID)
}

func TestAssignmentRepo_FullDayRoundTrip(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	a := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 15), 0, 0)
	a.FullDay = true
	require.NoError(t, f.assignments.Upsert(ctx, a))

	got, err := f.assignments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.FullDay)
	assert.Empty(t, got.PhaseID)
}

func TestAssignmentRepo_PhaseReference(t *testing.T) {
	database := testutil.NewTestDB(t)
	workers := repository.NewSQLiteWorkerRepo(database)
	affairs := repository.NewSQLiteAffairRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Marc")
	require.NoError(t, workers.Create(ctx, w))
	a := testutil.NewTestAffair("Job",
		testutil.WithDates(date(2025, 1, 6), date(2025, 1, 31)),
		testutil.WithPhase("fabrication", "fabrication", date(2025, 1, 6), date(2025, 1, 17)))
	require.NoError(t, affairs.Create(ctx, a))

	as := testutil.NewTestAssignment(w.ID, a.ID, date(2025, 1, 15), 8, 12)
	as.PhaseID = a.Phases[0].ID
	require.NoError(t, assignments.Upsert(ctx, as))

	got, err := assignments.GetByID(ctx, as.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Phases[0].ID, got.PhaseID)

	as.PhaseID = "ph-ghost"
	assert.Error(t, assignments.Upsert(ctx, as), "dangling phase ref rejected")
}

func TestAssignmentRepo_DeleteByAffairFrom(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	past := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 10), 8, 12)
	today := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 15), 8, 12)
	future := testutil.NewTestAssignment(f.worker.ID, f.affair.ID, date(2025, 1, 20), 8, 12)
	for _, a := range []*domain.Assignment{past, today, future} {
		require.NoError(t, f.assignments.Upsert(ctx, a))
	}

	n, err := f.assignments.DeleteByAffairFrom(ctx, f.affair.ID, "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "today and future cleared, history kept")

	left, err := f.assignments.ListByAffair(ctx, f.affair.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, past.ID, left[0].ID)
}

func TestAssignmentRepo_DeleteAbsentIsNoOp(t *testing.T) {
	f := newAssignmentFixture(t)
	assert.NoError(t, f.assignments.Delete(context.Background(), "as-ghost"))
}

func TestAssignmentRepo_CorruptDateSurfacesError(t *testing.T) {
	database := testutil.NewTestDB(t)
	workers := repository.NewSQLiteWorkerRepo(database)
	affairs := repository.NewSQLiteAffairRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Marc")
	require.NoError(t, workers.Create(ctx, w))
	af := testutil.NewTestAffair("Job", testutil.WithDates(date(2025, 1, 6), date(2025, 1, 31)))
	require.NoError(t, affairs.Create(ctx, af))
	a := testutil.NewTestAssignment(w.ID, af.ID, date(2025, 1, 15), 8, 12)
	require.NoError(t, assignments.Upsert(ctx, a))

	_, err := database.Exec(`UPDATE assignments SET date = '15/01/2025' WHERE id = ?`, a.ID)
	require.NoError(t, err)

	_, err = assignments.GetByID(ctx, a.ID)
	assert.ErrorContains(t, err, "parsing date")
}
