package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Dodibois40/atelier-planning/internal/cli/formatter"
)

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday, "sun": time.Sunday,
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q (expected mon..sun)", part)
		}
		days = append(days, d)
	}
	return days, nil
}

// changed reports whether the user set the flag explicitly; config set only
// touches the settings named on the command line.
func changed(flags *pflag.FlagSet, name string) bool {
	return flags.Changed(name)
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the planning calendar",
	}
	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the calendar configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Planning.FetchCalendarConfig(context.Background())
			if err != nil {
				return err
			}

			days := make([]string, 0, len(cfg.WorkingDays))
			for _, d := range cfg.WorkingDays {
				days = append(days, d.String()[:3])
			}

			dim := formatter.StyleDim
			fmt.Printf("%s\n", formatter.StyleHeader.Render("Planning calendar"))
			fmt.Printf("  %s %s - %s\n", dim.Render("working hours:"), formatClock(cfg.WorkStartMin), formatClock(cfg.WorkEndMin))
			fmt.Printf("  %s %s\n", dim.Render("working days:"), strings.Join(days, ", "))
			fmt.Printf("  %s %d min\n", dim.Render("slot:"), cfg.SlotMin)
			fmt.Printf("  %s %v\n", dim.Render("snap to grid:"), cfg.SnapToGrid)
			fmt.Printf("  %s %v\n", dim.Render("overlap allowed:"), cfg.OverlapAllowed)
			fmt.Printf("  %s %d affairs/worker/day\n", dim.Render("capacity:"), cfg.MaxConcurrentAffairs)
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var workStart, workEnd, days string
	var slot, maxAffairs int
	var snap, overlap bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change calendar settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Planning.FetchCalendarConfig(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if changed(flags, "work-start") {
				if cfg.WorkStartMin, err = parseClock(workStart); err != nil {
					return err
				}
			}
			if changed(flags, "work-end") {
				if cfg.WorkEndMin, err = parseClock(workEnd); err != nil {
					return err
				}
			}
			if changed(flags, "days") {
				if cfg.WorkingDays, err = parseWeekdays(days); err != nil {
					return err
				}
			}
			if changed(flags, "slot") {
				cfg.SlotMin = slot
			}
			if changed(flags, "snap") {
				cfg.SnapToGrid = snap
			}
			if changed(flags, "overlap") {
				cfg.OverlapAllowed = overlap
			}
			if changed(flags, "max-affairs") {
				cfg.MaxConcurrentAffairs = maxAffairs
			}

			if err := app.Planning.UpdateCalendarConfig(ctx, cfg); err != nil {
				return err
			}
			fmt.Println("Calendar updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&workStart, "work-start", "", "Working day start (HH:MM)")
	cmd.Flags().StringVar(&workEnd, "work-end", "", "Working day end (HH:MM)")
	cmd.Flags().StringVar(&days, "days", "", "Working days, comma separated (e.g. mon,tue,wed,thu,fri)")
	cmd.Flags().IntVar(&slot, "slot", 0, "Slot duration in minutes; must divide the working day evenly")
	cmd.Flags().BoolVar(&snap, "snap", true, "Snap drags to the slot grid")
	cmd.Flags().BoolVar(&overlap, "overlap", false, "Allow overlapping assignments on one worker")
	cmd.Flags().IntVar(&maxAffairs, "max-affairs", 0, "Max distinct affairs per worker per day")

	return cmd
}
