package domain

import "time"

// DateLayout is the storage and display format for timezone-naive local dates.
const DateLayout = "2006-01-02"

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ParseDate parses a YYYY-MM-DD string into a date-only time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateWindow is an inclusive range of calendar days, the unit the planning
// grid loads and renders at a time.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// WeekWindow returns the Monday-to-Sunday window containing anchor.
func WeekWindow(anchor time.Time) DateWindow {
	d := DateOnly(anchor)
	// time.Weekday starts the week on Sunday; shift so Monday is day 0.
	offset := (int(d.Weekday()) + 6) % 7
	from := d.AddDate(0, 0, -offset)
	return DateWindow{From: from, To: from.AddDate(0, 0, 6)}
}

// Days returns each day of the window in order.
func (w DateWindow) Days() []time.Time {
	var days []time.Time
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether day falls inside the window.
func (w DateWindow) Contains(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(w.From)) && !d.After(DateOnly(w.To))
}
