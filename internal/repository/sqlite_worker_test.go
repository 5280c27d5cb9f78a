package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/repository"
	"github.com/Dodibois40/atelier-planning/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Marc", testutil.WithRole(domain.RoleInstaller))
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marc", got.Name)
	assert.Equal(t, domain.RoleInstaller, got.Role)
	assert.True(t, got.Available)
	assert.Equal(t, domain.ContractEmployee, got.Contract)
	assert.Equal(t, w.Color, got.Color)
}

func TestWorkerRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(database)

	_, err := repo.GetByID(context.Background(), "w-ghost")
	assert.Error(t, err)
}

func TestWorkerRepo_ListFiltersUnavailable(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorker("Julie")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorker("Marc")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorker("René", testutil.Unavailable())))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Julie", all[0].Name, "ordered by name")
}

func TestWorkerRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Marc")
	require.NoError(t, repo.Create(ctx, w))

	w.Available = false
	w.Role = domain.RoleForeman
	w.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, domain.RoleForeman, got.Role)

	ghost := testutil.NewTestWorker("Ghost")
	assert.Error(t, repo.Update(ctx, ghost), "updating a missing worker fails")
}

func TestWorkerRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Marc")
	require.NoError(t, repo.Create(ctx, w))
	require.NoError(t, repo.Delete(ctx, w.ID))

	_, err := repo.GetByID(ctx, w.ID)
	assert.Error(t, err)
}
