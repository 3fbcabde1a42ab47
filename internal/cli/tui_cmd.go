package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newMonthModel(app), tea.WithAltScreen())

			// Re-render whenever a committed write publishes a snapshot.
			unsubscribe := app.Feed.Subscribe(func([]*domain.Job) {
				p.Send(feedChangedMsg{})
			})
			defer unsubscribe()

			_, err := p.Run()
			return err
		},
	}
}
