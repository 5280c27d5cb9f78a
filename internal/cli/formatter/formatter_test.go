package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "ROLE"},
		[][]string{{"Marc", "workshop"}, {"Jean-Baptiste", "installer"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Marc")
	assert.Contains(t, lines[3], "Jean-Baptiste")
}

func TestFormatWorkerList_Empty(t *testing.T) {
	assert.Contains(t, FormatWorkerList(nil), "No workers")
}

func TestFormatWorkerList(t *testing.T) {
	out := FormatWorkerList([]domain.Worker{
		{ID: "0c5e7a11-aaaa", Name: "Marc", Role: domain.RoleWorkshop, Color: "#e6694a", Available: true, Contract: domain.ContractEmployee},
		{ID: "1d6f8b22-bbbb", Name: "Julie", Role: domain.RoleInstaller, Available: false, Contract: domain.ContractSubcontractor},
	})
	assert.Contains(t, out, "Marc")
	assert.Contains(t, out, "Julie (off)")
	assert.Contains(t, out, "0c5e7a11")
}

func TestFormatAffair(t *testing.T) {
	marc := domain.Worker{ID: "w-1", Name: "Marc", Color: "#e6694a", Available: true}
	a := domain.Affair{
		Number: "MEN-001", Client: "Dupont", Label: "Kitchen refit",
		Status: domain.AffairInProgress, Priority: domain.PriorityHigh,
		StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 31),
		OutsideHours: true,
		Phases: []domain.Phase{
			{Name: "fabrication", Type: "fabrication", Seq: 0,
				StartDate: day(2025, 1, 6), EndDate: day(2025, 1, 17), ResponsibleID: "w-1"},
		},
	}

	out := FormatAffair(a, []domain.Worker{marc})
	assert.Contains(t, out, "MEN-001")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "1. fabrication")
	assert.Contains(t, out, "Marc")
	assert.Contains(t, out, "outside working hours")
}

func TestRenderLoadBar_Bounds(t *testing.T) {
	assert.Contains(t, RenderLoadBar(0, 10), "  0%")
	assert.Contains(t, RenderLoadBar(0.5, 10), " 50%")
	assert.Contains(t, RenderLoadBar(1.2, 10), "120%")
	assert.Contains(t, RenderLoadBar(-1, 10), "  0%")
}

func TestFormatWeekStats(t *testing.T) {
	out := FormatWeekStats([]planning.WorkerStat{
		{WorkerID: "w-1", Name: "Marc", AssignedMin: 240, CapacityMin: 3000},
	}, domain.DateWindow{From: day(2025, 1, 13), To: day(2025, 1, 19)})

	assert.Contains(t, out, "Week load")
	assert.Contains(t, out, "Marc")
	assert.Contains(t, out, "4.0h")
	assert.Contains(t, out, "50.0h")
}
