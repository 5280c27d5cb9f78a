package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

func atelierHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred = t.Focused
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalHours(s string) error {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err != nil || v < 0 {
		return fmt.Errorf("expected a non-negative number of hours")
	}
	return nil
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateDate)
}

// workerForm collects the fields of a new roster entry.
func workerForm(name, role, contract *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Workshop", string(domain.RoleWorkshop)),
					huh.NewOption("Installer", string(domain.RoleInstaller)),
					huh.NewOption("Foreman", string(domain.RoleForeman)),
					huh.NewOption("Apprentice", string(domain.RoleApprentice)),
					huh.NewOption("Office", string(domain.RoleOffice)),
				).
				Value(role),
			huh.NewSelect[string]().
				Title("Contract").
				Options(
					huh.NewOption("Employee", string(domain.ContractEmployee)),
					huh.NewOption("Subcontractor", string(domain.ContractSubcontractor)),
				).
				Value(contract),
		),
	).WithTheme(atelierHuhTheme()).WithShowHelp(false)
}

// affairForm collects the fields of a new affair.
func affairForm(number, client, label, priority, start, end, budget *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Number (e.g. MEN-042)").Value(number).Validate(validateRequired),
			huh.NewInput().Title("Client").Value(client).Validate(validateRequired),
			huh.NewInput().Title("Label").Value(label),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(domain.PriorityLow)),
					huh.NewOption("Normal", string(domain.PriorityNormal)),
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Urgent", string(domain.PriorityUrgent)),
				).
				Value(priority),
		),
		huh.NewGroup(
			dateInput("Start date", start),
			dateInput("End date", end),
			huh.NewInput().Title("Budget estimate (hours, blank for none)").Value(budget).Validate(validateOptionalHours),
		),
	).WithTheme(atelierHuhTheme()).WithShowHelp(false)
}
