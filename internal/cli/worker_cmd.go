package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// resolveWorkerID accepts a worker's name (case-insensitive), full id or id
// prefix and returns the worker's id.
func resolveWorkerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("worker name or id is required")
	}

	workers, err := app.Workers.List(ctx)
	if err != nil {
		return "", err
	}

	for _, w := range workers {
		if strings.EqualFold(w.Name, input) || w.ID == input {
			return w.ID, nil
		}
	}

	var matches []string
	for _, w := range workers {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("worker not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("worker id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newWorkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage the roster",
	}

	cmd.AddCommand(
		newWorkerAddCmd(app),
		newWorkerListCmd(app),
		newWorkerShowCmd(app),
		newWorkerAvailabilityCmd(app, "off", "Mark a worker unavailable", false),
		newWorkerAvailabilityCmd(app, "on", "Mark a worker available again", true),
		newWorkerRemoveCmd(app),
	)

	return cmd
}

func newWorkerAddCmd(app *App) *cobra.Command {
	var name, role, contract, color string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a worker to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := workerForm(&name, &role, &contract).Run(); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("worker name is required (--name or --interactive)")
			}
			if contract == "" {
				contract = string(domain.ContractEmployee)
			}

			w, err := app.Workers.Create(context.Background(), domain.Worker{
				Name:     name,
				Role:     domain.Role(role),
				Contract: domain.ContractType(contract),
				Color:    color,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s (%s) %s\n", w.Name, w.Role, formatter.StyleDim.Render(w.DisplayID()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&role, "role", "workshop", "Role (workshop, installer, foreman, apprentice, office)")
	cmd.Flags().StringVar(&contract, "contract", "", "Contract (employee, subcontractor)")
	cmd.Flags().StringVar(&color, "color", "", "Planning color (hex); default from the palette")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newWorkerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Workers.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorkerList(workers))
			return nil
		},
	}
}

func newWorkerShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Show one worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Workers.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWorker(w))
			return nil
		},
	}
}

func newWorkerAvailabilityCmd(app *App, use, short string, available bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name|id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.SetAvailability(ctx, id, available); err != nil {
				return err
			}
			state := "available"
			if !available {
				state = "unavailable"
			}
			fmt.Printf("Marked %s %s\n", args[0], state)
			return nil
		},
	}
}

func newWorkerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name|id>",
		Short: "Remove a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workers.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}
