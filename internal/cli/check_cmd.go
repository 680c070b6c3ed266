package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check today against the working time thresholds",
		Long:  "Classifies the running day against the configured thresholds and, when\na threshold is crossed, delivers a notification. Meant to be run by the\ninstalled systemd timer, but works standalone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewCheckRequest()

			// Unlike report, check fails hard on an unreadable log: a
			// silent timer run would suppress the warnings it exists for.
			resp, err := app.Check.RunCheck(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatCheck(resp, app.Cfg.Tracking.WorkingHours, app.Cfg.Tracking.MaxHours))
			return nil
		},
	}
}
