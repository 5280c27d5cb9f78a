package planning

import (
	"context"
	"testing"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadPopulatesSnapshot(t *testing.T) {
	store := loadedStore(t, testPort())

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Workers(), 3)
	assert.Len(t, snap.Affairs(), 3)

	a, ok := snap.Assignment("as-1")
	require.True(t, ok)
	assert.Equal(t, "w-marc", a.WorkerID)
}

func TestStore_LoadFailureKeepsPriorState(t *testing.T) {
	port := testPort()
	store := loadedStore(t, port)
	before := store.Snapshot()

	port.failFetch = true
	window := domain.DateWindow{From: day(2025, 1, 20), To: day(2025, 1, 26)}
	err := store.Load(context.Background(), window, port)

	require.ErrorIs(t, err, ErrLoad)
	assert.Same(t, before, store.Snapshot(), "failed load must not touch state")
}

func TestStore_LoadRejectsBadConfig(t *testing.T) {
	port := testPort()
	port.cfg.SlotMin = 45 // fractional slot count

	store := NewStore()
	window := domain.DateWindow{From: day(2025, 1, 13), To: day(2025, 1, 19)}
	err := store.Load(context.Background(), window, port)

	require.ErrorIs(t, err, ErrConfig)
	assert.False(t, store.Loaded())
}

func TestStore_UpsertIsCopyOnWrite(t *testing.T) {
	store := loadedStore(t, testPort())
	before := store.Snapshot()

	after := store.Upsert(domain.Assignment{
		ID: "as-2", WorkerID: "w-julie", AffairID: "af-2",
		Date: day(2025, 1, 16), StartMin: 8 * 60, EndMin: 10 * 60,
	})

	_, ok := before.Assignment("as-2")
	assert.False(t, ok, "prior snapshot must not see the new assignment")
	_, ok = after.Assignment("as-2")
	assert.True(t, ok)

	d := day(2025, 1, 16)
	assert.Empty(t, before.Query(Filter{WorkerID: "w-julie", Date: &d}))
	assert.Len(t, after.Query(Filter{WorkerID: "w-julie", Date: &d}), 1)
}

func TestStore_UpsertReplacesById(t *testing.T) {
	store := loadedStore(t, testPort())

	moved, _ := store.Snapshot().Assignment("as-1")
	moved.Date = day(2025, 1, 16)
	snap := store.Upsert(moved)

	old := day(2025, 1, 15)
	assert.Empty(t, snap.Query(Filter{WorkerID: "w-marc", Date: &old}), "index entry for old day removed")
	got, ok := snap.Assignment("as-1")
	require.True(t, ok)
	assert.Equal(t, day(2025, 1, 16), got.Date)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	store := loadedStore(t, testPort())
	before := store.Snapshot()

	after := store.Remove("as-nope")

	assert.Same(t, before, after)
}

func TestStore_Restore(t *testing.T) {
	store := loadedStore(t, testPort())
	before := store.Snapshot()

	store.Upsert(domain.Assignment{ID: "as-x", WorkerID: "w-julie", AffairID: "af-2", Date: day(2025, 1, 14), StartMin: 9 * 60, EndMin: 11 * 60})
	store.Restore(before)

	assert.Same(t, before, store.Snapshot())
	_, ok := store.Snapshot().Assignment("as-x")
	assert.False(t, ok)
}

func TestSnapshot_QueryFilters(t *testing.T) {
	store := loadedStore(t, testPort())
	store.Upsert(domain.Assignment{ID: "as-2", WorkerID: "w-marc", AffairID: "af-2",
		Date: day(2025, 1, 15), StartMin: 14 * 60, EndMin: 17 * 60})
	store.Upsert(domain.Assignment{ID: "as-3", WorkerID: "w-julie", AffairID: "af-2",
		Date: day(2025, 1, 15), StartMin: 8 * 60, EndMin: 12 * 60})
	snap := store.Snapshot()

	d := day(2025, 1, 15)
	marc := snap.Query(Filter{WorkerID: "w-marc", Date: &d})
	require.Len(t, marc, 2)
	assert.Equal(t, "as-1", marc[0].ID, "ordered by start time")
	assert.Equal(t, "as-2", marc[1].ID)

	assert.Len(t, snap.Query(Filter{AffairID: "af-2"}), 2)
	assert.Len(t, snap.Query(Filter{Date: &d}), 3)
	assert.Len(t, snap.Query(Filter{}), 3)
}

func TestSnapshot_CommitRoundTrip(t *testing.T) {
	store := loadedStore(t, testPort())

	placed := domain.Assignment{ID: "as-rt", WorkerID: "w-julie", AffairID: "af-2",
		Date: day(2025, 1, 17), StartMin: 9 * 60, EndMin: 12 * 60}
	snap := store.Upsert(placed)

	d := day(2025, 1, 17)
	got := snap.Query(Filter{WorkerID: "w-julie", Date: &d})
	require.Len(t, got, 1)
	assert.Equal(t, placed.WorkerID, got[0].WorkerID)
	assert.Equal(t, placed.Date, got[0].Date)
	assert.Equal(t, placed.DurationMin(snap.Config), got[0].DurationMin(snap.Config))
}
