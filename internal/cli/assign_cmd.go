package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

// newAssignCmd is the scriptable counterpart of the planning grid: place,
// list and remove assignments without a TTY.
func newAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Place, list and remove assignments",
	}

	cmd.AddCommand(
		newAssignAddCmd(app),
		newAssignListCmd(app),
		newAssignRemoveCmd(app),
	)

	return cmd
}

func newAssignAddCmd(app *App) *cobra.Command {
	var date, start, end, phase string
	var fullDay bool

	cmd := &cobra.Command{
		Use:   "add <worker> <affair>",
		Short: "Assign a worker to an affair on a given day",
		Long:  "Assign a worker to an affair. The placement is validated against the week's schedule before it is written; hard conflicts refuse the command, warnings are printed but do not block.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			workerID, err := resolveWorkerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			affair, err := resolveAffair(ctx, app, args[1])
			if err != nil {
				return err
			}
			day, err := domain.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			candidate := domain.Assignment{
				WorkerID: workerID,
				AffairID: affair.ID,
				Date:     day,
				FullDay:  fullDay,
			}
			if !fullDay {
				if candidate.StartMin, err = parseClock(start); err != nil {
					return err
				}
				if candidate.EndMin, err = parseClock(end); err != nil {
					return err
				}
			}
			if phase != "" {
				p := affair.Phase(phase)
				if p == nil {
					for i := range affair.Phases {
						if affair.Phases[i].Name == phase {
							p = &affair.Phases[i]
							break
						}
					}
				}
				if p == nil {
					return fmt.Errorf("affair %s has no phase %q", affair.Number, phase)
				}
				candidate.PhaseID = p.ID
			}

			store := planning.NewStore()
			if err := store.Load(ctx, domain.WeekWindow(day), app.Planning); err != nil {
				return err
			}
			snap := store.Snapshot()
			res := planning.Validate(candidate, snap, snap.Config)
			for _, w := range res.Warnings {
				fmt.Println(formatter.StyleYellow.Render("warning: " + w.Message))
			}

			ctrl := planning.NewController(store)
			if err := ctrl.BeginCreate(candidate); err != nil {
				return err
			}
			placed, err := ctrl.Commit(ctx, app.Planning)
			if err != nil {
				return err
			}
			fmt.Printf("Assigned %s to %s on %s\n", args[0],
				formatter.StyleBold.Render(affair.Number), placed.Date.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase (name or id)")
	cmd.Flags().BoolVar(&fullDay, "full-day", false, "Cover the whole working day")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newAssignListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the week's assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			anchor := time.Now()
			if date != "" {
				var err error
				if anchor, err = domain.ParseDate(date); err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
			}
			window := domain.WeekWindow(anchor)

			store := planning.NewStore()
			if err := store.Load(ctx, window, app.Planning); err != nil {
				return err
			}
			snap := store.Snapshot()

			var rows [][]string
			for _, w := range snap.Workers() {
				for _, day := range window.Days() {
					d := day
					for _, a := range snap.Query(planning.Filter{WorkerID: w.ID, Date: &d}) {
						span := "full day"
						if !a.FullDay {
							span = formatClock(a.StartMin) + "-" + formatClock(a.EndMin)
						}
						number := a.AffairID
						if af, ok := snap.Affair(a.AffairID); ok {
							number = af.Number
						}
						rows = append(rows, []string{
							formatter.WorkerStyle(w).Render(w.Name),
							a.Date.Format(domain.DateLayout), span, number, a.ID,
						})
					}
				}
			}
			if len(rows) == 0 {
				fmt.Printf("No assignments between %s and %s.\n",
					window.From.Format(domain.DateLayout), window.To.Format(domain.DateLayout))
				return nil
			}
			fmt.Print(formatter.RenderTable([]string{"WORKER", "DATE", "TIME", "AFFAIR", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day of the week to list (default today)")
	return cmd
}

func newAssignRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Planning.DeleteAssignment(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed assignment", args[0])
			return nil
		},
	}
}
