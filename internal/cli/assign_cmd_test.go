package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCmd_AddAndRemove(t *testing.T) {
	app := newTestApp(t)
	_, _, _, placed := seedPlanning(t, app)

	require.NoError(t, runCmd(t, app, "assign", "add", "Julie", "MEN-001",
		"--date", "2025-01-16", "--start", "08:00", "--end", "12:00"))

	got := fetchAssignments(t, app)
	require.Len(t, got, 2)

	require.NoError(t, runCmd(t, app, "assign", "remove", placed.ID))
	assert.Len(t, fetchAssignments(t, app), 1)
}

func TestAssignCmd_FullDay(t *testing.T) {
	app := newTestApp(t)
	seedPlanning(t, app)

	require.NoError(t, runCmd(t, app, "assign", "add", "Julie", "MEN-001",
		"--date", "2025-01-16", "--full-day"))

	got := fetchAssignments(t, app)
	require.Len(t, got, 2)
}

func TestAssignCmd_RefusesOverlap(t *testing.T) {
	app := newTestApp(t)
	seedPlanning(t, app)

	// Marc already holds 08:00-12:00 on the 15th.
	err := runCmd(t, app, "assign", "add", "Marc", "MEN-001",
		"--date", "2025-01-15", "--start", "09:00", "--end", "11:00")
	assert.Error(t, err)
	assert.Len(t, fetchAssignments(t, app), 1)
}

func TestAssignCmd_UnknownPhase(t *testing.T) {
	app := newTestApp(t)
	seedPlanning(t, app)

	err := runCmd(t, app, "assign", "add", "Julie", "MEN-001",
		"--date", "2025-01-16", "--start", "08:00", "--end", "12:00",
		"--phase", "varnishing")
	assert.ErrorContains(t, err, "no phase")
}

func TestAssignCmd_List(t *testing.T) {
	app := newTestApp(t)
	seedPlanning(t, app)

	require.NoError(t, runCmd(t, app, "assign", "list", "--date", "2025-01-15"))
}
