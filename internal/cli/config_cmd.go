package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, create or edit the configuration",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigInitCmd(app), newConfigEditCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatConfig(app.Cfg))
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented starter config file",
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteInitial(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote "+path)
			return nil
		},
	}
	return cmd
}

func newConfigEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			cfg := app.Cfg
			if err := runConfigForm(cfg); err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved "+path)
			return nil
		},
	}
}

// formatConfig renders the effective configuration grouped like the file.
func formatConfig(cfg *config.Config) string {
	var b strings.Builder

	section := func(name string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatter.Bold(name) + "\n")
	}
	field := func(key string, value any) {
		b.WriteString(fmt.Sprintf("%s %v\n", formatter.Dim(fmt.Sprintf("%-20s", key)), value))
	}

	t := cfg.Tracking
	section("tracking")
	field("history_days", t.HistoryDays)
	field("working_hours", t.WorkingHours)
	field("max_hours", t.MaxHours)
	field("breakfast_break", fmt.Sprintf("%g h after %g h", t.BreakfastBreak, t.BreakfastThreshold))
	field("lunch_break", fmt.Sprintf("%g h after %g h", t.LunchBreak, t.LunchThreshold))
	field("precision", t.Precision)
	field("join_intervals", t.JoinIntervals)
	field("show_logoff", t.ShowLogoff)
	field("merge_gap_minutes", t.MergeGapMinutes)

	section("sources")
	field("journal", cfg.Sources.Journal)
	field("dumps", len(cfg.Sources.Dumps))

	section("check")
	field("interval_minutes", cfg.Check.IntervalMinutes)
	field("notify", cfg.Check.Notify)
	field("notifier", cfg.Check.Notifier)

	section("archive")
	path := cfg.Archive.Path
	if path == "" {
		if p, err := cfg.ArchivePath(); err == nil {
			path = p
		}
	}
	field("path", path)
	field("retention_days", cfg.Archive.RetentionDays)

	section("logging")
	field("level", cfg.Logging.Level)
	field("format", cfg.Logging.Format)

	if len(cfg.Rules) > 0 {
		section("rules")
		field("custom rules", len(cfg.Rules))
	}

	return formatter.RenderBox("Configuration", b.String())
}
