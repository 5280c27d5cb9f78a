package importer

import (
	"fmt"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

var validContracts = map[string]bool{"": true, "employee": true, "subcontractor": true}

var validPriorities = map[string]bool{"": true, "low": true, "normal": true, "high": true, "urgent": true}

// ValidateSiteFile checks the site file before conversion and returns every
// problem found, so the operator can fix the file in one round.
func ValidateSiteFile(sf *SiteFile) []error {
	var errs []error

	workerRefs := make(map[string]bool)
	errs = append(errs, validateWorkers(sf.Workers, workerRefs)...)
	errs = append(errs, validateAffairs(sf.Affairs, workerRefs)...)

	if len(sf.Affairs) == 0 {
		errs = append(errs, fmt.Errorf("at least one affair is required"))
	}

	return errs
}

func validateWorkers(workers []WorkerImport, refs map[string]bool) []error {
	var errs []error
	for i, w := range workers {
		prefix := fmt.Sprintf("workers[%d]", i)
		if w.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[w.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, w.Ref))
		} else {
			refs[w.Ref] = true
		}
		if w.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidRoles[w.Role] {
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, w.Role))
		}
		if !validContracts[w.Contract] {
			errs = append(errs, fmt.Errorf("%s.contract: invalid value %q", prefix, w.Contract))
		}
	}
	return errs
}

func validateAffairs(affairs []AffairImport, workerRefs map[string]bool) []error {
	var errs []error
	affairRefs := make(map[string]bool)
	numbers := make(map[string]bool)

	for i, a := range affairs {
		prefix := fmt.Sprintf("affairs[%d]", i)

		if a.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if affairRefs[a.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, a.Ref))
		} else {
			affairRefs[a.Ref] = true
		}

		probe := domain.Affair{Number: a.Number}
		if err := probe.ValidateNumber(); err != nil {
			errs = append(errs, fmt.Errorf("%s.number: %w", prefix, err))
		} else if numbers[a.Number] {
			errs = append(errs, fmt.Errorf("%s.number: duplicate number %q", prefix, a.Number))
		} else {
			numbers[a.Number] = true
		}

		if a.Client == "" {
			errs = append(errs, fmt.Errorf("%s.client is required", prefix))
		}
		if a.Status != "" && !domain.ValidAffairStatuses[domain.AffairStatus(a.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, a.Status))
		}
		if !validPriorities[a.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, a.Priority))
		}

		start, end, dateErrs := parseDateRange(prefix, a.StartDate, a.EndDate)
		errs = append(errs, dateErrs...)

		for j, p := range a.Phases {
			errs = append(errs, validatePhase(fmt.Sprintf("%s.phases[%d]", prefix, j), p, start, end, workerRefs)...)
		}
	}
	return errs
}

func validatePhase(prefix string, p PhaseImport, affairStart, affairEnd time.Time, workerRefs map[string]bool) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if !domain.ValidPhaseTypes[p.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, p.Type))
	}
	if p.ResponsibleRef != "" && !workerRefs[p.ResponsibleRef] {
		errs = append(errs, fmt.Errorf("%s.responsible_ref: unknown worker ref %q", prefix, p.ResponsibleRef))
	}

	start, end, dateErrs := parseDateRange(prefix, p.StartDate, p.EndDate)
	errs = append(errs, dateErrs...)
	if len(dateErrs) == 0 && !affairStart.IsZero() && !affairEnd.IsZero() {
		if start.Before(affairStart) || end.After(affairEnd) {
			errs = append(errs, fmt.Errorf("%s: dates [%s, %s] fall outside the affair's dates", prefix, p.StartDate, p.EndDate))
		}
	}
	return errs
}

func parseDateRange(prefix, startStr, endStr string) (time.Time, time.Time, []error) {
	var errs []error
	var start, end time.Time
	var err error

	if startStr == "" {
		errs = append(errs, fmt.Errorf("%s.start_date is required", prefix))
	} else if start, err = domain.ParseDate(startStr); err != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: invalid date %q (expected YYYY-MM-DD)", prefix, startStr))
	}
	if endStr == "" {
		errs = append(errs, fmt.Errorf("%s.end_date is required", prefix))
	} else if end, err = domain.ParseDate(endStr); err != nil {
		errs = append(errs, fmt.Errorf("%s.end_date: invalid date %q (expected YYYY-MM-DD)", prefix, endStr))
	}
	if len(errs) == 0 && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s: end_date %q precedes start_date %q", prefix, endStr, startStr))
	}
	return start, end, errs
}
