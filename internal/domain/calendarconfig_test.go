package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarConfig_DefaultIsValid(t *testing.T) {
	require.NoError(t, DefaultCalendarConfig().Validate())
}

func TestCalendarConfig_Validate(t *testing.T) {
	base := DefaultCalendarConfig()

	cfg := base
	cfg.WorkingDays = nil
	assert.Error(t, cfg.Validate(), "empty working day set")

	cfg = base
	cfg.WorkEndMin = cfg.WorkStartMin
	assert.Error(t, cfg.Validate(), "zero-length day")

	cfg = base
	cfg.SlotMin = 0
	assert.Error(t, cfg.Validate(), "zero slot duration")

	cfg = base
	cfg.SlotMin = 45 // 600 working minutes / 45 is fractional
	assert.Error(t, cfg.Validate(), "fractional slot count")

	cfg = base
	cfg.MaxConcurrentAffairs = 0
	assert.Error(t, cfg.Validate())
}

func TestCalendarConfig_IsWorkingDay(t *testing.T) {
	cfg := DefaultCalendarConfig()

	assert.True(t, cfg.IsWorkingDay(day(2025, 1, 15)), "Wednesday")
	assert.False(t, cfg.IsWorkingDay(day(2025, 1, 18)), "Saturday")
	assert.False(t, cfg.IsWorkingDay(day(2025, 1, 19)), "Sunday")
}

func TestCalendarConfig_WithinWorkingHours(t *testing.T) {
	cfg := DefaultCalendarConfig() // 08:00-18:00

	assert.True(t, cfg.WithinWorkingHours(8*60, 12*60))
	assert.True(t, cfg.WithinWorkingHours(8*60, 18*60))
	assert.False(t, cfg.WithinWorkingHours(7*60, 12*60))
	assert.False(t, cfg.WithinWorkingHours(16*60, 19*60))
}

func TestWeekWindow(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	w := WeekWindow(day(2025, 1, 15))

	assert.Equal(t, day(2025, 1, 13), w.From, "starts on Monday")
	assert.Equal(t, day(2025, 1, 19), w.To, "ends on Sunday")
	assert.Len(t, w.Days(), 7)

	// Anchoring on a Monday or Sunday stays in the same week.
	assert.Equal(t, w, WeekWindow(day(2025, 1, 13)))
	assert.Equal(t, w, WeekWindow(day(2025, 1, 19)))
}

func TestDateWindow_Contains(t *testing.T) {
	w := DateWindow{From: day(2025, 1, 13), To: day(2025, 1, 19)}

	assert.True(t, w.Contains(day(2025, 1, 13)))
	assert.True(t, w.Contains(time.Date(2025, 1, 19, 23, 30, 0, 0, time.Local)), "time of day ignored")
	assert.False(t, w.Contains(day(2025, 1, 20)))
}

func TestAssignment_SpanAndOverlap(t *testing.T) {
	cfg := DefaultCalendarConfig()

	a := Assignment{WorkerID: "w-1", StartMin: 8 * 60, EndMin: 12 * 60}
	b := Assignment{WorkerID: "w-1", StartMin: 10 * 60, EndMin: 14 * 60}
	c := Assignment{WorkerID: "w-1", StartMin: 12 * 60, EndMin: 14 * 60}

	assert.True(t, a.Overlaps(b, cfg))
	assert.True(t, b.Overlaps(a, cfg))
	assert.False(t, a.Overlaps(c, cfg), "touching spans do not overlap")

	full := Assignment{WorkerID: "w-1", FullDay: true}
	start, end := full.Span(cfg)
	assert.Equal(t, cfg.WorkStartMin, start)
	assert.Equal(t, cfg.WorkEndMin, end)
	assert.True(t, full.Overlaps(a, cfg), "full day covers morning block")
	assert.Equal(t, 600, full.DurationMin(cfg))
}

func TestColorFor(t *testing.T) {
	palette := []string{"#111111", "#222222", "#333333"}

	assert.Equal(t, "#111111", ColorFor(0, palette))
	assert.Equal(t, "#333333", ColorFor(2, palette))
	assert.Equal(t, "#111111", ColorFor(3, palette), "cycles with modulo")
	assert.Equal(t, "#222222", ColorFor(7, palette))
	assert.Equal(t, "", ColorFor(-1, palette))
	assert.Equal(t, "", ColorFor(0, nil))
}
