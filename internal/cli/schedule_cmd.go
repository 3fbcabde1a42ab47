package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/cli/formatter"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect and rework a job's day schedule",
	}

	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleMoveCmd(app),
		newScheduleResizeCmd(app),
		newSchedulePopCmd(app),
	)

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show JOB",
		Short: "Show the day-by-day schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			job, err := app.Jobs.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSchedule(job))
			return nil
		},
	}
}

func newScheduleMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move JOB DAY DATE",
		Short: "Move work day DAY (1-based) to DATE, rebasing later days",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDayArg(args[1])
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[2])
			if err != nil {
				return err
			}

			job, err := app.Schedule.Move(ctx, id, day-1, date)
			if err != nil {
				return describeRejection(err)
			}

			fmt.Println(formatter.FormatSchedule(job))
			return nil
		},
	}
}

func newScheduleResizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resize JOB DATE",
		Short: "Stretch the schedule so its last day lands on DATE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[1])
			if err != nil {
				return err
			}

			job, err := app.Jobs.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if len(job.Schedule) == 0 {
				return fmt.Errorf("job %s has no schedule to resize", job.Title)
			}

			job, err = app.Schedule.Resize(ctx, id, len(job.Schedule)-1, date)
			if err != nil {
				return describeRejection(err)
			}

			fmt.Println(formatter.FormatSchedule(job))
			return nil
		},
	}
}

func newSchedulePopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pop JOB",
		Short: "Remove the last scheduled day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}

			job, err := app.Schedule.RemoveLast(ctx, id)
			if err != nil {
				return describeRejection(err)
			}

			fmt.Printf("Removed last day; %d remain.\n", len(job.Schedule))
			return nil
		},
	}
}

// parseDayArg parses a 1-based day number.
func parseDayArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid day %q: use a 1-based day number", s)
	}
	return n, nil
}

// describeRejection turns an engine rejection into a flat, user-facing
// error; other errors pass through unchanged.
func describeRejection(err error) error {
	if r, ok := scheduler.AsRejection(err); ok {
		return fmt.Errorf("not applied: %s", r.Reason)
	}
	return err
}
