package formatter

import (
	"fmt"
	"strings"

	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderLoadBar renders a load bar like [████░░░░]  45%. Load above 100%
// turns the bar red; a comfortable load stays green.
func RenderLoadBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if width < 2 {
		width = 2
	}

	shown := ratio
	if shown > 1 {
		shown = 1
	}
	filled := int(shown * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case ratio > 1:
		style = StyleRed
	case ratio > 0.85:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}

// FormatWeekStats renders per-worker load for a window.
func FormatWeekStats(stats []planning.WorkerStat, window domain.DateWindow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		StyleHeader.Render("Week load"),
		StyleDim.Render(window.From.Format(domain.DateLayout)+" -> "+window.To.Format(domain.DateLayout)))

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%.1fh", float64(s.AssignedMin)/60),
			fmt.Sprintf("%.1fh", float64(s.CapacityMin)/60),
			RenderLoadBar(s.Utilization(), 20),
		})
	}
	b.WriteString(RenderTable([]string{"WORKER", "ASSIGNED", "CAPACITY", "LOAD"}, rows))
	return b.String()
}
