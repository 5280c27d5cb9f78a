package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// FormatAffairList renders the affair book as a table.
func FormatAffairList(affairs []domain.Affair) string {
	if len(affairs) == 0 {
		return StyleDim.Render("No affairs.") + "\n"
	}

	rows := make([][]string, 0, len(affairs))
	for _, a := range affairs {
		rows = append(rows, []string{
			StyleBold.Render(a.Number),
			a.Client,
			a.Label,
			StatusIndicator(a.Status),
			PriorityStyle(a.Priority).Render(string(a.Priority)),
			formatRange(a.StartDate, a.EndDate),
		})
	}
	return RenderTable([]string{"NUMBER", "CLIENT", "LABEL", "STATUS", "PRIORITY", "DATES"}, rows)
}

// FormatAffair renders one affair with its phases.
func FormatAffair(a domain.Affair, workers []domain.Worker) string {
	byID := make(map[string]domain.Worker, len(workers))
	for _, w := range workers {
		byID[w.ID] = w
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s — %s\n", StyleBold.Render(a.Number), StatusIndicator(a.Status), a.Label)
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("client:"), a.Client)
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("dates:"), formatRange(a.StartDate, a.EndDate))
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("priority:"), PriorityStyle(a.Priority).Render(string(a.Priority)))
	if a.OutsideHours {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render("may run outside working hours"))
	}
	if a.BudgetEstimate > 0 {
		fmt.Fprintf(&b, "  %s %.0f h estimated, %.0f h realized\n",
			StyleDim.Render("budget:"), a.BudgetEstimate, a.BudgetRealized)
	}

	if len(a.Phases) > 0 {
		fmt.Fprintf(&b, "  %s\n", StyleHeader.Render("phases"))
		for _, p := range a.Phases {
			resp := ""
			if p.ResponsibleID != "" {
				if w, ok := byID[p.ResponsibleID]; ok {
					resp = "  " + WorkerSwatch(w)
				}
			}
			fmt.Fprintf(&b, "    %d. %s (%s)  %s%s\n",
				p.Seq+1, p.Name, StyleDim.Render(p.Type), formatRange(p.StartDate, p.EndDate), resp)
		}
	}
	return b.String()
}

func formatRange(start, end time.Time) string {
	return StyleDim.Render(start.Format(domain.DateLayout) + " -> " + end.Format(domain.DateLayout))
}
