package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/cli/formatter"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

func newCalendarCmd(app *App) *cobra.Command {
	var (
		month      string
		groups     []string
		noShipping bool
		noInHand   bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render the month calendar of projected events",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			year, m := now.Year(), now.Month()
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q: use YYYY-MM", month)
				}
				year, m = t.Year(), t.Month()
			}

			filter := calendarFilter(app, groups, noShipping, noInHand)
			events, err := app.Projection.Events(context.Background(), filter)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatMonth(year, m, events, app.Config.Color, now, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to render (YYYY-MM, default current)")
	cmd.Flags().StringSliceVar(&groups, "group", nil, "Limit to these calendar groups")
	cmd.Flags().BoolVar(&noShipping, "no-shipping", false, "Hide shipping milestones")
	cmd.Flags().BoolVar(&noInHand, "no-in-hand", false, "Hide in-hand milestones")

	return cmd
}

// calendarFilter derives the projector filter from config, with CLI flags
// taking precedence.
func calendarFilter(app *App, groups []string, noShipping, noInHand bool) scheduler.ViewFilter {
	filter := app.Config.Filter()
	if len(groups) > 0 {
		filter.ActiveGroups = make(map[string]bool, len(groups))
		for _, g := range groups {
			filter.ActiveGroups[g] = true
		}
	}
	if noShipping {
		filter.ShowShipping = false
	}
	if noInHand {
		filter.ShowInHand = false
	}
	return filter
}
