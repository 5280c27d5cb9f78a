package formatter

import (
	"fmt"
	"strings"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// FormatWorkerList renders the roster as a table.
func FormatWorkerList(workers []domain.Worker) string {
	if len(workers) == 0 {
		return StyleDim.Render("No workers. Add one with: atelier worker add --name ...") + "\n"
	}

	rows := make([][]string, 0, len(workers))
	for _, w := range workers {
		avail := StyleGreen.Render("yes")
		if !w.Available {
			avail = StyleDim.Render("no")
		}
		rows = append(rows, []string{
			w.DisplayID(),
			WorkerSwatch(w),
			string(w.Role),
			string(w.Contract),
			avail,
		})
	}
	return RenderTable([]string{"ID", "NAME", "ROLE", "CONTRACT", "AVAILABLE"}, rows)
}

// FormatWorker renders one worker's detail block.
func FormatWorker(w domain.Worker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleBold.Render(w.Name))
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("id:"), w.ID)
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("role:"), w.Role)
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("contract:"), w.Contract)
	fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("color:"), WorkerStyle(w).Render(w.Color))
	if !w.Available {
		fmt.Fprintf(&b, "  %s\n", StyleDim.Render("currently unavailable"))
	}
	return b.String()
}
