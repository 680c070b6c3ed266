package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/spf13/cobra"
)

func newWidgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "widget",
		Short: "Live working time status view",
		Long:  "A small full-screen status view that re-runs the reconstruction on a\nrefresh ticker. Intended to sit on a spare corner of the screen or run\nunder the desktop session autostart.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Report readiness when running under a systemd unit; a no-op
			// without NOTIFY_SOCKET.
			if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
				app.Log.Warn().Err(err).Msg("sd_notify failed")
			}

			p := tea.NewProgram(newWidgetModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
