package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dodibois40/atelier-planning/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workers  service.WorkerService
	Affairs  service.AffairService
	Planning service.PlanningService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal; the planning
	// grid refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "atelier" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "atelier",
		Short: "Workshop team planning",
	}

	root.AddCommand(
		newWorkerCmd(app),
		newAffairCmd(app),
		newAssignCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
	)

	return root
}
