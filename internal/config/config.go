package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// ErrInvalid marks configuration that failed validation. Load never falls
// back to defaults for out-of-range values; it fails immediately.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the complete application configuration.
type Config struct {
	Tracking TrackingConfig `mapstructure:"tracking"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Check    CheckConfig    `mapstructure:"check"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Rules    []RuleSpec     `mapstructure:"rules"`

	compiled []domain.Rule
}

// TrackingConfig defines how sessions are reconstructed and booked.
type TrackingConfig struct {
	HistoryDays        int     `mapstructure:"history_days"`
	WorkingHours       float64 `mapstructure:"working_hours"`
	MaxHours           float64 `mapstructure:"max_hours"`
	BreakfastBreak     float64 `mapstructure:"breakfast_break"`
	BreakfastThreshold float64 `mapstructure:"breakfast_threshold"`
	LunchBreak         float64 `mapstructure:"lunch_break"`
	LunchThreshold     float64 `mapstructure:"lunch_threshold"`
	Precision          int     `mapstructure:"precision"`
	JoinIntervals      bool    `mapstructure:"join_intervals"`
	ShowLogoff         bool    `mapstructure:"show_logoff"`
	MergeGapMinutes    int     `mapstructure:"merge_gap_minutes"`
}

// SourcesConfig selects the event logs to read. Dumps are journalctl JSON
// exports, read in addition to the live journal.
type SourcesConfig struct {
	Journal bool     `mapstructure:"journal"`
	Dumps   []string `mapstructure:"dumps"`
}

// CheckConfig defines the periodic threshold check. Notifier is one of
// desktop, console or log.
type CheckConfig struct {
	IntervalMinutes int    `mapstructure:"interval_minutes"`
	Notify          bool   `mapstructure:"notify"`
	Notifier        string `mapstructure:"notifier"`
}

// ArchiveConfig defines the local event archive. RetentionDays zero keeps
// events forever.
type ArchiveConfig struct {
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RuleSpec is a user-supplied classification rule. An empty rules list keeps
// the built-in table.
type RuleSpec struct {
	Provider          string `mapstructure:"provider"`
	Code              int    `mapstructure:"code"`
	PayloadPattern    string `mapstructure:"payload_pattern"`
	RequireShowLogoff bool   `mapstructure:"require_show_logoff"`
	Kind              string `mapstructure:"kind"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "goodtimes", "config.toml"), nil
}

// Load reads configuration from the given file and GOODTIMES_* environment
// variables. An empty path means the default location, which may be absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	optional := false
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
		optional = true
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("GOODTIMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
		if !optional {
			return nil, fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
		}
	} else if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tracking.history_days", 14)
	v.SetDefault("tracking.working_hours", 8.0)
	v.SetDefault("tracking.max_hours", 10.0)
	v.SetDefault("tracking.breakfast_break", 0.25)
	v.SetDefault("tracking.breakfast_threshold", 4.0)
	v.SetDefault("tracking.lunch_break", 0.5)
	v.SetDefault("tracking.lunch_threshold", 6.0)
	v.SetDefault("tracking.precision", 4)
	v.SetDefault("tracking.join_intervals", true)
	v.SetDefault("tracking.show_logoff", false)
	v.SetDefault("tracking.merge_gap_minutes", 10)

	v.SetDefault("sources.journal", true)
	v.SetDefault("sources.dumps", []string{})

	v.SetDefault("check.interval_minutes", 5)
	v.SetDefault("check.notify", true)
	v.SetDefault("check.notifier", "desktop")

	v.SetDefault("archive.path", "")
	v.SetDefault("archive.retention_days", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// validate checks ranges and compiles the classification rules.
func (c *Config) validate() error {
	t := c.Tracking
	if t.HistoryDays < 1 {
		return fmt.Errorf("%w: history_days must be at least 1, got %d", ErrInvalid, t.HistoryDays)
	}
	if t.WorkingHours <= 0 || t.WorkingHours > 24 {
		return fmt.Errorf("%w: working_hours must be in (0, 24], got %g", ErrInvalid, t.WorkingHours)
	}
	if t.MaxHours < t.WorkingHours {
		return fmt.Errorf("%w: max_hours %g below working_hours %g", ErrInvalid, t.MaxHours, t.WorkingHours)
	}
	if t.BreakfastBreak < 0 || t.LunchBreak < 0 {
		return fmt.Errorf("%w: break durations must not be negative", ErrInvalid)
	}
	if t.BreakfastThreshold < 0 || t.LunchThreshold < 0 {
		return fmt.Errorf("%w: break thresholds must not be negative", ErrInvalid)
	}
	if t.Precision < 1 || t.Precision > 100 {
		return fmt.Errorf("%w: precision must be in [1, 100], got %d", ErrInvalid, t.Precision)
	}
	if t.MergeGapMinutes < 0 {
		return fmt.Errorf("%w: merge_gap_minutes must not be negative, got %d", ErrInvalid, t.MergeGapMinutes)
	}
	if c.Check.IntervalMinutes < 1 {
		return fmt.Errorf("%w: check interval_minutes must be at least 1, got %d", ErrInvalid, c.Check.IntervalMinutes)
	}
	switch c.Check.Notifier {
	case "desktop", "console", "log":
	default:
		return fmt.Errorf("%w: check notifier must be desktop, console or log, got %q", ErrInvalid, c.Check.Notifier)
	}
	for i, p := range c.Sources.Dumps {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: sources dump %d is empty", ErrInvalid, i+1)
		}
	}
	if c.Archive.RetentionDays < 0 {
		return fmt.Errorf("%w: archive retention_days must not be negative, got %d", ErrInvalid, c.Archive.RetentionDays)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging format must be text or json, got %q", ErrInvalid, c.Logging.Format)
	}

	rules, err := compileRules(c.Rules)
	if err != nil {
		return err
	}
	c.compiled = rules
	return nil
}

// Validate re-checks all value ranges and recompiles the classification
// rules. Callers that mutate a loaded Config, e.g. to apply command-line
// overrides, must validate again before use.
func (c *Config) Validate() error {
	return c.validate()
}

// ClassifierRules returns the compiled classification table: the user-supplied
// rules when present, the built-in table otherwise.
func (c *Config) ClassifierRules() []domain.Rule {
	if len(c.compiled) == 0 {
		return domain.DefaultRules()
	}
	return c.compiled
}

func compileRules(specs []RuleSpec) ([]domain.Rule, error) {
	rules := make([]domain.Rule, 0, len(specs))
	for i, s := range specs {
		if s.Provider == "" {
			return nil, fmt.Errorf("%w: rule %d missing provider", ErrInvalid, i+1)
		}
		if !domain.ValidEventKinds[s.Kind] {
			return nil, fmt.Errorf("%w: rule %d has unknown kind %q", ErrInvalid, i+1, s.Kind)
		}
		r := domain.Rule{
			Provider:           s.Provider,
			Code:               s.Code,
			RequiresShowLogoff: s.RequireShowLogoff,
			Kind:               domain.EventKind(s.Kind),
		}
		if s.PayloadPattern != "" {
			p, err := regexp.Compile(s.PayloadPattern)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %d payload pattern: %v", ErrInvalid, i+1, err)
			}
			r.PayloadPattern = p
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// MergeGap returns the maximum pause still folded into the surrounding
// interval.
func (c *Config) MergeGap() time.Duration {
	return time.Duration(c.Tracking.MergeGapMinutes) * time.Minute
}

// History returns how far back events are fetched.
func (c *Config) History() time.Duration {
	return time.Duration(c.Tracking.HistoryDays) * 24 * time.Hour
}

// CheckInterval returns the period of the background threshold check.
func (c *Config) CheckInterval() time.Duration {
	return time.Duration(c.Check.IntervalMinutes) * time.Minute
}

// ArchivePath returns the configured archive location, falling back to the
// XDG data directory.
func (c *Config) ArchivePath() (string, error) {
	if c.Archive.Path != "" {
		return c.Archive.Path, nil
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "goodtimes", "events.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "goodtimes", "events.db"), nil
}
