package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/importer"
)

func TestWorkerCmd_AddListRemove(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, runCmd(t, app, "worker", "add", "--name", "Marc", "--role", "workshop"))
	require.NoError(t, runCmd(t, app, "worker", "add", "--name", "Julie", "--role", "installer", "--contract", "subcontractor"))

	workers, err := app.Workers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 2)

	require.NoError(t, runCmd(t, app, "worker", "off", "marc"))
	workers, err = app.Workers.List(context.Background())
	require.NoError(t, err)
	for _, w := range workers {
		if w.Name == "Marc" {
			assert.False(t, w.Available)
		}
	}

	require.NoError(t, runCmd(t, app, "worker", "remove", "Julie"))
	workers, err = app.Workers.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, workers, 1)
}

func TestWorkerCmd_RejectsBadRole(t *testing.T) {
	app := newTestApp(t)
	err := runCmd(t, app, "worker", "add", "--name", "Marc", "--role", "plumber")
	assert.ErrorContains(t, err, "invalid worker role")
}

func TestResolveWorkerID(t *testing.T) {
	app := newTestApp(t)
	marc, _, _, _ := seedPlanning(t, app)
	ctx := context.Background()

	id, err := resolveWorkerID(ctx, app, "marc")
	require.NoError(t, err)
	assert.Equal(t, marc.ID, id)

	id, err = resolveWorkerID(ctx, app, marc.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, marc.ID, id)

	_, err = resolveWorkerID(ctx, app, "ghost")
	assert.ErrorContains(t, err, "not found")
}

func TestAffairCmd_AddStatusAndPhase(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, runCmd(t, app, "affair", "add",
		"--number", "MEN-010", "--client", "Dupont", "--label", "Wardrobe",
		"--start", "2025-01-06", "--end", "2025-01-31", "--priority", "high"))

	a, err := app.Affairs.GetByNumber(ctx, "MEN-010")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, a.Priority)

	require.NoError(t, runCmd(t, app, "affair", "phase", "MEN-010",
		"--name", "fabrication", "--type", "fabrication",
		"--start", "2025-01-06", "--end", "2025-01-17"))

	require.NoError(t, runCmd(t, app, "affair", "status", "MEN-010", "in_progress"))

	a, err = app.Affairs.GetByNumber(ctx, "MEN-010")
	require.NoError(t, err)
	assert.Equal(t, domain.AffairInProgress, a.Status)
	require.Len(t, a.Phases, 1)

	err = runCmd(t, app, "affair", "status", "MEN-010", "nonsense")
	assert.Error(t, err)
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, runCmd(t, app, "config", "set",
		"--work-start", "07:30", "--work-end", "16:30",
		"--days", "mon,tue,wed,thu,fri,sat", "--slot", "30", "--max-affairs", "3"))

	cfg, err := app.Planning.FetchCalendarConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7*60+30, cfg.WorkStartMin)
	assert.Equal(t, 16*60+30, cfg.WorkEndMin)
	assert.Len(t, cfg.WorkingDays, 6)
	assert.Equal(t, 30, cfg.SlotMin)
	assert.Equal(t, 3, cfg.MaxConcurrentAffairs)

	// A slot that does not divide the day evenly is refused.
	err = runCmd(t, app, "config", "set", "--slot", "50")
	assert.Error(t, err)
}

func TestImportCmd(t *testing.T) {
	app := newTestApp(t)

	sf := &importer.SiteFile{
		Workers: []importer.WorkerImport{{Ref: "marc", Name: "Marc", Role: "workshop"}},
		Affairs: []importer.AffairImport{{
			Ref: "kitchen", Number: "MEN-001", Client: "Dupont",
			StartDate: "2025-01-06", EndDate: "2025-01-31",
		}},
	}
	data, err := json.Marshal(sf)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, runCmd(t, app, "import", path))

	workers, err := app.Workers.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, workers, 1)
	_, err = app.Affairs.GetByNumber(context.Background(), "MEN-001")
	assert.NoError(t, err)
}

func TestPlanCmd_RefusesWithoutTerminal(t *testing.T) {
	app := newTestApp(t)
	app.IsInteractive = func() bool { return false }

	err := runCmd(t, app, "plan")
	assert.ErrorContains(t, err, "needs a terminal")
}

func TestPlanStatsCmd(t *testing.T) {
	app := newTestApp(t)
	seedPlanning(t, app)
	require.NoError(t, runCmd(t, app, "plan", "stats", "--date", "2025-01-15"))
}
