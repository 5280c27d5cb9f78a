package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
	"github.com/Dodibois40/atelier-planning/internal/domain"
	"github.com/Dodibois40/atelier-planning/internal/planning"
)

func weekRef(date string, weekOffset int) (time.Time, error) {
	ref := time.Now()
	if date != "" {
		var err error
		if ref, err = domain.ParseDate(date); err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
		}
	}
	return ref.AddDate(0, 0, 7*weekOffset), nil
}

func newPlanCmd(app *App) *cobra.Command {
	var date string
	var weekOffset int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Open the interactive planning grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the planning grid needs a terminal; use 'atelier plan stats' in scripts")
			}
			ref, err := weekRef(date, weekOffset)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewPlanModel(app, ref), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Open the week containing this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&weekOffset, "week", 0, "Week offset from today (e.g. 1 for next week)")

	cmd.AddCommand(newPlanStatsCmd(app))
	return cmd
}

func newPlanStatsCmd(app *App) *cobra.Command {
	var date string
	var weekOffset int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Per-worker load for one week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := weekRef(date, weekOffset)
			if err != nil {
				return err
			}
			window := domain.WeekWindow(ref)

			ctx := context.Background()
			store := planning.NewStore()
			if err := store.Load(ctx, window, app.Planning); err != nil {
				return err
			}
			cfg, err := app.Planning.FetchCalendarConfig(ctx)
			if err != nil {
				return err
			}

			stats := planning.WeekStats(store.Snapshot(), cfg, window)
			fmt.Print(formatter.FormatWeekStats(stats, window))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Week containing this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&weekOffset, "week", 0, "Week offset from today")
	return cmd
}
