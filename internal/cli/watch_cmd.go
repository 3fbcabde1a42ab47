package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

func newWatchCmd(app *App) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log job snapshots as the database changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			unsubscribe := app.Feed.Subscribe(func(jobs []*domain.Job) {
				app.Logger.Info("snapshot",
					zap.Uint64("seq", app.Feed.Seq()),
					zap.Int("jobs", len(jobs)),
					zap.Float64("scheduled_hours", totalScheduled(jobs)),
				)
			})
			defer unsubscribe()

			app.Logger.Info("watching", zap.Duration("interval", interval))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			var last string
			for {
				select {
				case <-ctx.Done():
					fmt.Println("stopped")
					return nil
				case <-ticker.C:
					jobs, err := app.Jobs.List(ctx)
					if err != nil {
						app.Logger.Error("listing jobs", zap.Error(err))
						continue
					}
					fp := fingerprint(jobs)
					if fp != last {
						last = fp
						app.Feed.Publish(jobs)
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Poll interval")

	return cmd
}

// fingerprint summarizes a job list so polling can detect changes made by
// other processes sharing the database file.
func fingerprint(jobs []*domain.Job) string {
	var b strings.Builder
	for _, j := range jobs {
		fmt.Fprintf(&b, "%s:%d:%d;", j.ID, len(j.Schedule), j.UpdatedAt.UnixNano())
	}
	return b.String()
}

func totalScheduled(jobs []*domain.Job) float64 {
	var total float64
	for _, j := range jobs {
		total += j.ScheduledHours()
	}
	return total
}
