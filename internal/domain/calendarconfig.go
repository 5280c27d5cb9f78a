package domain

import (
	"fmt"
	"time"
)

// CalendarConfig is the process-wide planning calendar: read once per
// session, never mutated while a schedule window is loaded.
type CalendarConfig struct {
	WorkStartMin         int // minutes from midnight
	WorkEndMin           int
	WorkingDays          []time.Weekday
	SlotMin              int // time-slot duration in minutes
	SnapToGrid           bool
	OverlapAllowed       bool
	MaxConcurrentAffairs int
}

// DefaultCalendarConfig is the shop's standard week: Monday through Friday,
// 08:00-18:00, one-hour slots, no double-booking, two concurrent affairs.
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		WorkStartMin: 8 * 60,
		WorkEndMin:   18 * 60,
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		SlotMin:              60,
		SnapToGrid:           true,
		OverlapAllowed:       false,
		MaxConcurrentAffairs: 2,
	}
}

// Validate checks the configuration invariants the grid depends on.
func (c CalendarConfig) Validate() error {
	if len(c.WorkingDays) == 0 {
		return fmt.Errorf("working day set is empty")
	}
	if c.WorkEndMin <= c.WorkStartMin {
		return fmt.Errorf("working hours end (%d) must be after start (%d)", c.WorkEndMin, c.WorkStartMin)
	}
	if c.SlotMin <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", c.SlotMin)
	}
	if (c.WorkEndMin-c.WorkStartMin)%c.SlotMin != 0 {
		return fmt.Errorf("working hours (%d min) are not a whole number of %d-minute slots",
			c.WorkEndMin-c.WorkStartMin, c.SlotMin)
	}
	if c.MaxConcurrentAffairs < 1 {
		return fmt.Errorf("max concurrent affairs must be at least 1, got %d", c.MaxConcurrentAffairs)
	}
	return nil
}

// IsWorkingDay reports whether day's weekday is in the working set.
func (c CalendarConfig) IsWorkingDay(day time.Time) bool {
	wd := day.Weekday()
	for _, d := range c.WorkingDays {
		if d == wd {
			return true
		}
	}
	return false
}

// WithinWorkingHours reports whether the [startMin, endMin) span lies inside
// the configured working hours.
func (c CalendarConfig) WithinWorkingHours(startMin, endMin int) bool {
	return startMin >= c.WorkStartMin && endMin <= c.WorkEndMin
}
