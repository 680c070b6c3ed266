package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

func newArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Snapshot the live event log into the local archive",
		Long:  "Copies the current journal events into the local SQLite archive so the\nreport history survives journal rotation. Running it without a subcommand\ntakes a snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewSnapshotRequest()

			resp, err := app.Archive.Snapshot(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshot(resp))
			return nil
		},
	}

	cmd.AddCommand(newArchivePruneCmd(app), newArchiveInfoCmd(app))
	return cmd
}

func newArchivePruneCmd(app *App) *cobra.Command {
	var keepDays int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove archived events older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPruneRequest()
			req.KeepDays = keepDays

			resp, err := app.Archive.Prune(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrune(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&keepDays, "keep", 0, "Days to keep (default: archive retention_days from the config)")
	return cmd
}

func newArchiveInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the state of the local event archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.Archive.Info(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatArchiveInfo(info))
			return nil
		},
	}
}
