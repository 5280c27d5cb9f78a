package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
)

// resolveAffair accepts an affair number (e.g. MEN-042) or id and returns
// the affair.
func resolveAffair(ctx context.Context, app *App, input string) (domain.Affair, error) {
	if input == "" {
		return domain.Affair{}, fmt.Errorf("affair number or id is required")
	}
	if a, err := app.Affairs.GetByNumber(ctx, input); err == nil {
		return a, nil
	}
	return app.Affairs.Get(ctx, input)
}

func newAffairCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affair",
		Short: "Manage affairs",
	}

	cmd.AddCommand(
		newAffairAddCmd(app),
		newAffairListCmd(app),
		newAffairShowCmd(app),
		newAffairStatusCmd(app),
		newAffairPhaseCmd(app),
		newAffairRemoveCmd(app),
	)

	return cmd
}

func newAffairAddCmd(app *App) *cobra.Command {
	var number, client, label, priority, start, end, budget string
	var outsideHours, interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an affair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := affairForm(&number, &client, &label, &priority, &start, &end, &budget).Run(); err != nil {
					return err
				}
			}

			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			a := domain.Affair{
				Number:       number,
				Client:       client,
				Label:        label,
				Priority:     domain.Priority(priority),
				StartDate:    startDate,
				EndDate:      endDate,
				OutsideHours: outsideHours,
			}
			if budget != "" {
				v, err := strconv.ParseFloat(budget, 64)
				if err != nil {
					return fmt.Errorf("invalid budget %q: %w", budget, err)
				}
				a.BudgetEstimate = v
			}

			created, err := app.Affairs.Create(context.Background(), a)
			if err != nil {
				return err
			}
			fmt.Printf("Created affair %s for %s\n", formatter.StyleBold.Render(created.Number), created.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Affair number (e.g. MEN-042)")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&label, "label", "", "Short description")
	cmd.Flags().StringVar(&priority, "priority", "normal", "Priority (low, normal, high, urgent)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&budget, "budget", "", "Estimated hours")
	cmd.Flags().BoolVar(&outsideHours, "outside-hours", false, "Allow placements outside working hours")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newAffairListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List affairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			affairs, err := app.Affairs.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAffairList(affairs))
			return nil
		},
	}
}

func newAffairShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number|id>",
		Short: "Show one affair with its phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAffair(ctx, app, args[0])
			if err != nil {
				return err
			}
			workers, err := app.Workers.List(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAffair(a, workers))
			return nil
		},
	}
}

func newAffairStatusCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "status <number|id> <planned|in_progress|done|cancelled>",
		Short: "Change an affair's status",
		Long:  "Change an affair's status. Cancelling removes its planned assignments from the given day on.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAffair(ctx, app, args[0])
			if err != nil {
				return err
			}

			day := time.Now()
			if from != "" {
				if day, err = domain.ParseDate(from); err != nil {
					return fmt.Errorf("invalid date %q: %w", from, err)
				}
			}

			to := domain.AffairStatus(args[1])
			if err := app.Affairs.ChangeStatus(ctx, a.ID, to, day); err != nil {
				return err
			}
			fmt.Printf("Affair %s is now %s\n", a.Number, formatter.StatusIndicator(to))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "For cancellation: first day whose assignments are cleared (default today)")
	return cmd
}

func newAffairPhaseCmd(app *App) *cobra.Command {
	var name, phaseType, start, end, responsible string
	var hours float64

	cmd := &cobra.Command{
		Use:   "phase <number|id>",
		Short: "Append a phase to an affair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAffair(ctx, app, args[0])
			if err != nil {
				return err
			}

			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			p := domain.Phase{
				Name:           name,
				Type:           phaseType,
				StartDate:      startDate,
				EndDate:        endDate,
				EstimatedHours: hours,
			}
			if responsible != "" {
				id, err := resolveWorkerID(ctx, app, responsible)
				if err != nil {
					return err
				}
				p.ResponsibleID = id
			}

			created, err := app.Affairs.AddPhase(ctx, a.ID, p)
			if err != nil {
				return err
			}
			fmt.Printf("Added phase %d. %s to %s\n", created.Seq+1, created.Name, a.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&phaseType, "type", "", "Phase type (study, supply, fabrication, finishing, delivery, installation)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Responsible worker (name or id)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newAffairRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <number|id>",
		Short: "Remove an affair and its phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAffair(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Affairs.Delete(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Removed affair %s\n", a.Number)
			return nil
		},
	}
}
