package domain

import (
	"fmt"
	"regexp"
	"time"
)

var affairNumberPattern = regexp.MustCompile(`^[A-Z]{2,4}-[0-9]{2,4}$`)

// Affair is a client job: the unit workers are assigned to, directly or
// through one of its phases.
type Affair struct {
	ID       string
	Number   string
	Client   string
	Label    string
	Status   AffairStatus
	Priority Priority

	StartDate time.Time
	EndDate   time.Time

	// OutsideHours marks jobs allowed to run outside standard working
	// hours (night deliveries, weekend installs). Placements outside the
	// calendar raise no warning for these.
	OutsideHours bool

	BudgetEstimate float64
	BudgetRealized float64

	Phases []Phase

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateNumber checks that Number is non-empty and matches the site
// numbering scheme: 2-4 uppercase letters, a dash, 2-4 digits (e.g. MEN-042).
func (a *Affair) ValidateNumber() error {
	if a.Number == "" {
		return fmt.Errorf("affair number is required")
	}
	if !affairNumberPattern.MatchString(a.Number) {
		return fmt.Errorf("affair number %q must be 2-4 uppercase letters, a dash, then 2-4 digits (e.g. MEN-042)", a.Number)
	}
	return nil
}

// ValidateDates checks the start-before-end invariant.
func (a *Affair) ValidateDates() error {
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return fmt.Errorf("affair %s: start and end dates are required", a.Number)
	}
	if a.EndDate.Before(a.StartDate) {
		return fmt.Errorf("affair %s: end date %s precedes start date %s",
			a.Number, a.EndDate.Format(DateLayout), a.StartDate.Format(DateLayout))
	}
	return nil
}

// ContainsDate reports whether day falls within [StartDate, EndDate].
func (a *Affair) ContainsDate(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(a.StartDate)) && !d.After(DateOnly(a.EndDate))
}

// Phase returns the phase with the given id, or nil.
func (a *Affair) Phase(id string) *Phase {
	for i := range a.Phases {
		if a.Phases[i].ID == id {
			return &a.Phases[i]
		}
	}
	return nil
}

// Phase is one ordered step of an affair (study, fabrication, installation...).
type Phase struct {
	ID       string
	AffairID string
	Name     string
	Type     string
	Seq      int

	StartDate time.Time
	EndDate   time.Time

	EstimatedHours float64
	ActualHours    float64

	// ResponsibleID is the worker accountable for the phase; empty when unset.
	ResponsibleID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateWithin checks that the phase date range lies inside its affair's range.
func (p *Phase) ValidateWithin(a *Affair) error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("phase %s: end date precedes start date", p.Name)
	}
	if DateOnly(p.StartDate).Before(DateOnly(a.StartDate)) || DateOnly(p.EndDate).After(DateOnly(a.EndDate)) {
		return fmt.Errorf("phase %s: dates %s..%s outside affair %s range %s..%s",
			p.Name,
			p.StartDate.Format(DateLayout), p.EndDate.Format(DateLayout),
			a.Number,
			a.StartDate.Format(DateLayout), a.EndDate.Format(DateLayout))
	}
	return nil
}

// ContainsDate reports whether day falls within the phase's planned range.
func (p *Phase) ContainsDate(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}
