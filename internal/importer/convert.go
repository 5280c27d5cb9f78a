package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// Converted holds the domain entities produced from a validated site file,
// ids minted and phase responsibles resolved.
type Converted struct {
	Workers []*domain.Worker
	Affairs []*domain.Affair
}

// Convert turns a validated site file into domain entities. Worker colors
// not set in the file come from the default palette, in file order.
// Convert assumes ValidateSiteFile reported no errors.
func Convert(sf *SiteFile) *Converted {
	now := time.Now()
	out := &Converted{}

	workerIDByRef := make(map[string]string, len(sf.Workers))
	for i, wi := range sf.Workers {
		w := &domain.Worker{
			ID:        uuid.New().String(),
			Name:      wi.Name,
			Role:      domain.Role(wi.Role),
			Color:     wi.Color,
			Available: true,
			Contract:  domain.ContractType(wi.Contract),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if w.Contract == "" {
			w.Contract = domain.ContractEmployee
		}
		if w.Color == "" {
			w.Color = domain.ColorFor(i, domain.DefaultPalette)
		}
		workerIDByRef[wi.Ref] = w.ID
		out.Workers = append(out.Workers, w)
	}

	for _, ai := range sf.Affairs {
		start, _ := domain.ParseDate(ai.StartDate)
		end, _ := domain.ParseDate(ai.EndDate)

		a := &domain.Affair{
			ID:             uuid.New().String(),
			Number:         ai.Number,
			Client:         ai.Client,
			Label:          ai.Label,
			Status:         domain.AffairStatus(ai.Status),
			Priority:       domain.Priority(ai.Priority),
			StartDate:      start,
			EndDate:        end,
			OutsideHours:   ai.OutsideHours,
			BudgetEstimate: ai.BudgetEstimate,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if a.Status == "" {
			a.Status = domain.AffairPlanned
		}
		if a.Priority == "" {
			a.Priority = domain.PriorityNormal
		}

		for seq, pi := range ai.Phases {
			pStart, _ := domain.ParseDate(pi.StartDate)
			pEnd, _ := domain.ParseDate(pi.EndDate)
			a.Phases = append(a.Phases, domain.Phase{
				ID:             uuid.New().String(),
				AffairID:       a.ID,
				Name:           pi.Name,
				Type:           pi.Type,
				Seq:            seq,
				StartDate:      pStart,
				EndDate:        pEnd,
				EstimatedHours: pi.EstimatedHours,
				ResponsibleID:  workerIDByRef[pi.ResponsibleRef],
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
		out.Affairs = append(out.Affairs, a)
	}
	return out
}
