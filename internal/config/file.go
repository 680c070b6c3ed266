package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const fileTemplate = `# goodtimes configuration.
# Every key can also be set via environment, e.g. GOODTIMES_TRACKING_WORKING_HOURS=7.5

[tracking]
# Days of event history to reconstruct.
history_days = 14
# Contracted hours per day; flex time is measured against this.
working_hours = 8.0
# Legal daily limit; the check warns when booking hours approach it.
max_hours = 10.0
# Breaks in hours, deducted once uptime reaches the matching threshold.
breakfast_break = 0.25
breakfast_threshold = 4.0
lunch_break = 0.5
lunch_threshold = 6.0
# Decimal sub-steps per hour for rounding (4 = quarter hours).
precision = 4
# Treat the whole day as one block from first start to last stop.
join_intervals = true
# Also track session lock and unlock, not just power transitions.
show_logoff = false
# Pauses shorter than this are folded into the surrounding interval.
merge_gap_minutes = 10

[sources]
# Read the live systemd journal.
journal = true
# Additional journalctl -o json export files.
dumps = []

[check]
interval_minutes = 5
notify = true
# Where warnings go: desktop (notify-send), console or log.
notifier = "desktop"

[archive]
# Empty means $XDG_DATA_HOME/goodtimes/events.db
path = ""
# 0 keeps archived events forever.
retention_days = 0

[logging]
level = "warn"
format = "text"

# Custom classification rules replace the built-in table when present.
# [[rules]]
# provider = "systemd-logind"
# code = 7
# payload_pattern = "(?i)\\bunlocked\\b"
# require_show_logoff = true
# kind = "session_unlock"
`

// WriteInitial writes a commented starter config. It refuses to overwrite an
// existing file.
func WriteInitial(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(fileTemplate), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Save persists cfg to path as TOML, replacing the file.
func Save(cfg *Config, path string) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.Set("tracking.history_days", cfg.Tracking.HistoryDays)
	v.Set("tracking.working_hours", cfg.Tracking.WorkingHours)
	v.Set("tracking.max_hours", cfg.Tracking.MaxHours)
	v.Set("tracking.breakfast_break", cfg.Tracking.BreakfastBreak)
	v.Set("tracking.breakfast_threshold", cfg.Tracking.BreakfastThreshold)
	v.Set("tracking.lunch_break", cfg.Tracking.LunchBreak)
	v.Set("tracking.lunch_threshold", cfg.Tracking.LunchThreshold)
	v.Set("tracking.precision", cfg.Tracking.Precision)
	v.Set("tracking.join_intervals", cfg.Tracking.JoinIntervals)
	v.Set("tracking.show_logoff", cfg.Tracking.ShowLogoff)
	v.Set("tracking.merge_gap_minutes", cfg.Tracking.MergeGapMinutes)
	v.Set("sources.journal", cfg.Sources.Journal)
	v.Set("sources.dumps", cfg.Sources.Dumps)
	v.Set("check.interval_minutes", cfg.Check.IntervalMinutes)
	v.Set("check.notify", cfg.Check.Notify)
	v.Set("check.notifier", cfg.Check.Notifier)
	v.Set("archive.path", cfg.Archive.Path)
	v.Set("archive.retention_days", cfg.Archive.RetentionDays)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	if len(cfg.Rules) > 0 {
		rules := make([]map[string]any, 0, len(cfg.Rules))
		for _, r := range cfg.Rules {
			rules = append(rules, map[string]any{
				"provider":            r.Provider,
				"code":                r.Code,
				"payload_pattern":     r.PayloadPattern,
				"require_show_logoff": r.RequireShowLogoff,
				"kind":                r.Kind,
			})
		}
		v.Set("rules", rules)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
