package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/cli/formatter"
	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/service"
)

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	cmd.AddCommand(
		newJobCreateCmd(app),
		newJobListCmd(app),
		newJobShowCmd(app),
		newJobColorCmd(app),
		newJobDeleteCmd(app),
	)

	return cmd
}

func newJobCreateCmd(app *App) *cobra.Command {
	var (
		title   string
		hours   float64
		perDay  float64
		start   string
		ship    string
		inHand  string
		group   string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job and generate its schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if title == "" {
				if !app.Interactive {
					return fmt.Errorf("--title is required (or run interactively)")
				}
				return runJobWizard(ctx, app)
			}

			if perDay == 0 {
				perDay = app.Config.Defaults.PerDayHours
			}
			if color == "" {
				color = app.Config.Defaults.ColorKey
			}
			if group == "" {
				group = app.Config.Defaults.CalendarGroup
			}

			params := service.CreateJobParams{
				Title:         title,
				TotalHours:    hours,
				PerDayHours:   perDay,
				CalendarGroup: group,
				ColorKey:      color,
			}

			startDate := time.Now().UTC()
			if start != "" {
				d, err := parseDateArg(start)
				if err != nil {
					return err
				}
				startDate = d
			}
			params.StartDate = domain.Day(startDate)

			if ship != "" {
				d, err := parseDateArg(ship)
				if err != nil {
					return err
				}
				params.ShippingDate = &d
			}
			if inHand != "" {
				d, err := parseDateArg(inHand)
				if err != nil {
					return err
				}
				params.InHandDate = &d
			}

			job, err := app.Jobs.Create(ctx, params)
			if err != nil {
				return err
			}

			fmt.Printf("Created job %s (%d work days)\n", job.Title, len(job.Schedule))
			fmt.Println(formatter.FormatSchedule(job))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Total hours of work")
	cmd.Flags().Float64Var(&perDay, "per-day", 0, "Hours worked per day")
	cmd.Flags().StringVar(&start, "start", "", "First candidate day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&ship, "ship", "", "Shipping date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&inHand, "in-hand", "", "In-hand date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&group, "group", "", "Calendar group")
	cmd.Flags().StringVar(&color, "color", "", "Color key")

	return cmd
}

func newJobListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.Jobs.List(context.Background())
			if err != nil {
				return err
			}

			if len(jobs) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}

			fmt.Println(formatter.FormatJobList(jobs, app.Config.Color))
			return nil
		},
	}
}

func newJobShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show JOB",
		Short: "Show a job's schedule",
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
			if job.ShippingDate != nil {
				fmt.Printf("Shipping: %s\n", domain.FormatDate(*job.ShippingDate))
			}
			if job.InHandDate != nil {
				fmt.Printf("In hand:  %s\n", domain.FormatDate(*job.InHandDate))
			}
			return nil
		},
	}
}

func newJobColorCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "color JOB KEY",
		Short: "Change a job's color key (and optionally its group)",
		Args:  cobra.ExactArgs(2),
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
			if group == "" {
				group = job.CalendarGroup
			}

			if err := app.Jobs.UpdateDisplay(ctx, id, args[1], group); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", job.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "New calendar group")

	return cmd
}

func newJobDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete JOB",
		Short: "Delete a job and its schedule",
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

			if !yes && app.Interactive {
				var confirmed bool
				form := wizardConfirm(fmt.Sprintf("Delete %q and its %d scheduled days?", job.Title, len(job.Schedule)), &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Jobs.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", job.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
