package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dancinggoatstudios/shopcal/internal/config"
	"github.com/dancinggoatstudios/shopcal/internal/service"
)

// App holds references to the service interfaces used by CLI commands,
// plus the loaded configuration and logger.
type App struct {
	Jobs       service.JobService
	Schedule   service.ScheduleService
	Projection service.ProjectionService
	Feed       *service.ChangeFeed
	Config     *config.Config
	Logger     *zap.Logger

	// Interactive is true when stdin is a terminal; huh forms are only
	// offered in that case.
	Interactive bool
}

// NewRootCmd creates the top-level "shopcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shopcal",
		Short: "Job-day scheduling calendar for a production shop",
	}

	root.AddCommand(
		newJobCmd(app),
		newScheduleCmd(app),
		newMilestoneCmd(app),
		newCalendarCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
		newTuiCmd(app),
	)

	return root
}
