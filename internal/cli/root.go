package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/service"
)

// App holds the configuration and service interfaces used by CLI commands.
// Cfg and Log are populated by the root PersistentPreRunE once flags have
// been parsed; Wire then builds the services from the final configuration.
type App struct {
	Cfg *config.Config
	Log zerolog.Logger

	Report  service.ReportService
	Check   service.CheckService
	Archive service.ArchiveService

	// QuietCheck classifies without notifying. The widget polls it on
	// every refresh; notifications stay with the timer-driven check.
	QuietCheck service.CheckService

	// Wire builds the services from Cfg. main injects the production
	// wiring; tests leave it nil and preset the services directly.
	Wire func(a *App) error

	// Cleanup releases resources acquired by Wire, e.g. the archive
	// database handle. Set by Wire, called by main after Execute.
	Cleanup func()

	configPath string
}

// skipConfigAnnotation marks commands that run before any configuration
// exists, such as "config init".
const skipConfigAnnotation = "goodtimes_skip_config"

// NewRootCmd creates the top-level "goodtimes" command and registers all
// subcommands against the provided App. Running it without a subcommand
// renders the report, the default mode.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "goodtimes",
		Short:         "Working time from the system event log",
		Long:          "goodtimes reconstructs daily working time from boot, sleep and session\nevents in the systemd journal and reports booking hours and flex time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default ~/.config/goodtimes/config.toml)")
	root.PersistentFlags().Int("history", 0, "Days of history to reconstruct")
	root.PersistentFlags().Float64("working-hours", 0, "Target working hours per day")
	root.PersistentFlags().Float64("max-hours", 0, "Maximum working hours per day")
	root.PersistentFlags().Float64("breakfast-break", -1, "Breakfast break in hours")
	root.PersistentFlags().Float64("lunch-break", -1, "Lunch break in hours")
	root.PersistentFlags().Int("precision", 0, "Rounding sub-steps per hour (4 = quarter hours)")
	root.PersistentFlags().Bool("join", false, "Join all intervals of a day into one block")
	root.PersistentFlags().Bool("show-logoff", false, "Track session lock and unlock as well")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return nil
		}

		cfg := app.Cfg
		if cfg == nil {
			loaded, err := config.Load(app.configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		applyOverrides(cmd.Flags(), cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		app.Cfg = cfg
		app.Log = newLogger(cfg.Logging)

		if app.Wire != nil {
			return app.Wire(app)
		}
		return nil
	}

	reportCmd := newReportCmd(app)
	root.RunE = reportCmd.RunE
	root.Flags().AddFlagSet(reportCmd.Flags())

	root.AddCommand(
		reportCmd,
		newCheckCmd(app),
		newWidgetCmd(app),
		newArchiveCmd(app),
		newConfigCmd(app),
		newInstallCmd(app),
		newUninstallCmd(app),
		newInstallWidgetCmd(app),
		newUninstallWidgetCmd(app),
	)

	return root
}

// applyOverrides copies every changed command-line flag onto the loaded
// configuration. Flags beat the config file, which beats the defaults.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("history") {
		cfg.Tracking.HistoryDays, _ = flags.GetInt("history")
	}
	if flags.Changed("working-hours") {
		cfg.Tracking.WorkingHours, _ = flags.GetFloat64("working-hours")
	}
	if flags.Changed("max-hours") {
		cfg.Tracking.MaxHours, _ = flags.GetFloat64("max-hours")
	}
	if flags.Changed("breakfast-break") {
		cfg.Tracking.BreakfastBreak, _ = flags.GetFloat64("breakfast-break")
	}
	if flags.Changed("lunch-break") {
		cfg.Tracking.LunchBreak, _ = flags.GetFloat64("lunch-break")
	}
	if flags.Changed("precision") {
		cfg.Tracking.Precision, _ = flags.GetInt("precision")
	}
	if flags.Changed("join") {
		cfg.Tracking.JoinIntervals, _ = flags.GetBool("join")
	}
	if flags.Changed("show-logoff") {
		cfg.Tracking.ShowLogoff, _ = flags.GetBool("show-logoff")
	}
}

// newLogger builds the process logger from the logging configuration.
// Text format renders through a console writer, colored only on a terminal.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	var log zerolog.Logger
	if cfg.Format == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}
	return log.Level(level).With().Timestamp().Logger()
}

// Execute runs the root command and reports failures on stderr.
func Execute(app *App) int {
	if err := NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
