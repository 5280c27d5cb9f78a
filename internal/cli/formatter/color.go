package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for an affair status.
func StatusStyle(status domain.AffairStatus) lipgloss.Style {
	switch status {
	case domain.AffairPlanned:
		return StyleBlue
	case domain.AffairInProgress:
		return StyleYellow
	case domain.AffairDone:
		return StyleGreen
	case domain.AffairCancelled:
		return StyleDim
	default:
		return StyleFg
	}
}

// StatusIndicator returns a colored status marker such as "● in_progress".
func StatusIndicator(status domain.AffairStatus) string {
	return StatusStyle(status).Render("● " + string(status))
}

// PriorityStyle returns the style for an affair priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityLow:
		return StyleDim
	default:
		return StyleFg
	}
}

// WorkerStyle returns a style rendering in the worker's palette color.
func WorkerStyle(w domain.Worker) lipgloss.Style {
	if w.Color == "" {
		return StyleFg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(w.Color))
}

// WorkerSwatch returns the worker's name rendered in their planning color,
// dimmed when unavailable.
func WorkerSwatch(w domain.Worker) string {
	if !w.Available {
		return StyleDim.Render(w.Name + " (off)")
	}
	return WorkerStyle(w).Render(w.Name)
}
