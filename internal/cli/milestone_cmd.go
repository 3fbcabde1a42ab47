package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Set or clear shipping and in-hand dates",
	}

	cmd.AddCommand(
		newMilestoneSetCmd(app),
		newMilestoneClearCmd(app),
	)

	return cmd
}

func newMilestoneSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set JOB KIND DATE",
		Short: "Set a milestone (kind: shipping or in_hand)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			kind, err := parseMilestoneKind(args[1])
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[2])
			if err != nil {
				return err
			}

			job, err := app.Schedule.SetMilestone(ctx, id, kind, &date)
			if err != nil {
				return describeRejection(err)
			}

			fmt.Printf("%s %s set to %s\n", job.Title, kind, domain.FormatDate(date))
			return nil
		},
	}
}

func newMilestoneClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear JOB KIND",
		Short: "Clear a milestone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			kind, err := parseMilestoneKind(args[1])
			if err != nil {
				return err
			}

			job, err := app.Schedule.SetMilestone(ctx, id, kind, nil)
			if err != nil {
				return describeRejection(err)
			}

			fmt.Printf("%s %s cleared\n", job.Title, kind)
			return nil
		},
	}
}

func parseMilestoneKind(s string) (domain.MilestoneKind, error) {
	if !domain.ValidMilestoneKinds[s] {
		return "", fmt.Errorf("invalid milestone kind %q: use shipping or in_hand", s)
	}
	return domain.MilestoneKind(s), nil
}
