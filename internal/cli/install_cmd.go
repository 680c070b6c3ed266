package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumpitzstuff/goodTimes/internal/install"
)

func newInstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the periodic check as a systemd user timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := install.NewInstaller(app.Cfg.CheckInterval(), app.Log)
			if err != nil {
				return err
			}
			if err := in.InstallCheck(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Check timer installed, running every %d minutes.\n",
				app.Cfg.Check.IntervalMinutes)
			return nil
		},
	}
}

func newUninstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the systemd check timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := install.NewInstaller(app.Cfg.CheckInterval(), app.Log)
			if err != nil {
				return err
			}
			if err := in.UninstallCheck(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Check timer removed.")
			return nil
		},
	}
}

func newInstallWidgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "install-widget",
		Short: "Autostart the status widget with the desktop session",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := install.NewInstaller(app.Cfg.CheckInterval(), app.Log)
			if err != nil {
				return err
			}
			if err := in.InstallWidget(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Widget autostart entry installed.")
			return nil
		},
	}
}

func newUninstallWidgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall-widget",
		Short: "Remove the widget autostart entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := install.NewInstaller(app.Cfg.CheckInterval(), app.Log)
			if err != nil {
				return err
			}
			if err := in.UninstallWidget(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Widget autostart entry removed.")
			return nil
		},
	}
}
