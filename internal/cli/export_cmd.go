package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/ics"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the projected calendar as an iCalendar (.ics) feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := app.Config.Filter()
			if all {
				filter = scheduler.AllVisible
			}

			events, err := app.Projection.Events(context.Background(), filter)
			if err != nil {
				return err
			}

			feed := ics.Export(events, app.Config.Color, time.Now().UTC())

			if output == "" {
				fmt.Print(feed)
				return nil
			}
			if err := os.WriteFile(output, []byte(feed), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Wrote %d events to %s\n", len(events), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&all, "all", false, "Ignore configured view filters")

	return cmd
}
