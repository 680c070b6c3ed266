package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Tracking.HistoryDays)
	assert.Equal(t, 8.0, cfg.Tracking.WorkingHours)
	assert.Equal(t, 10.0, cfg.Tracking.MaxHours)
	assert.Equal(t, 0.25, cfg.Tracking.BreakfastBreak)
	assert.Equal(t, 4.0, cfg.Tracking.BreakfastThreshold)
	assert.Equal(t, 0.5, cfg.Tracking.LunchBreak)
	assert.Equal(t, 6.0, cfg.Tracking.LunchThreshold)
	assert.Equal(t, 4, cfg.Tracking.Precision)
	assert.True(t, cfg.Tracking.JoinIntervals)
	assert.False(t, cfg.Tracking.ShowLogoff)
	assert.Equal(t, 10*time.Minute, cfg.MergeGap())
	assert.Equal(t, 5*time.Minute, cfg.CheckInterval())
	assert.Equal(t, 14*24*time.Hour, cfg.History())
	assert.True(t, cfg.Sources.Journal)
	assert.Empty(t, cfg.Sources.Dumps)
	assert.Equal(t, "desktop", cfg.Check.Notifier)
	assert.Equal(t, domain.DefaultRules(), cfg.ClassifierRules())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[tracking]
working_hours = 7.5
precision = 2
show_logoff = true

[check]
interval_minutes = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7.5, cfg.Tracking.WorkingHours)
	assert.Equal(t, 2, cfg.Tracking.Precision)
	assert.True(t, cfg.Tracking.ShowLogoff)
	assert.Equal(t, 10*time.Minute, cfg.CheckInterval())
	// Untouched keys keep their defaults.
	assert.Equal(t, 10.0, cfg.Tracking.MaxHours)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GOODTIMES_TRACKING_PRECISION", "2")
	t.Setenv("GOODTIMES_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Tracking.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero precision", "[tracking]\nprecision = 0\n"},
		{"precision above limit", "[tracking]\nprecision = 101\n"},
		{"zero working hours", "[tracking]\nworking_hours = 0.0\n"},
		{"working hours above a day", "[tracking]\nworking_hours = 25.0\n"},
		{"max below working", "[tracking]\nworking_hours = 8.0\nmax_hours = 6.0\n"},
		{"negative lunch break", "[tracking]\nlunch_break = -0.5\n"},
		{"negative breakfast threshold", "[tracking]\nbreakfast_threshold = -1.0\n"},
		{"zero history", "[tracking]\nhistory_days = 0\n"},
		{"negative merge gap", "[tracking]\nmerge_gap_minutes = -1\n"},
		{"zero check interval", "[check]\ninterval_minutes = 0\n"},
		{"unknown notifier", "[check]\nnotifier = \"popup\"\n"},
		{"blank dump path", "[sources]\ndumps = [\" \"]\n"},
		{"negative retention", "[archive]\nretention_days = -7\n"},
		{"unknown log format", "[logging]\nformat = \"xml\"\n"},
		{"rule without provider", "[[rules]]\ncode = 1\nkind = \"boot_wake\"\n"},
		{"rule with unknown kind", "[[rules]]\nprovider = \"systemd\"\ncode = 1\nkind = \"reboot\"\n"},
		{"rule with broken pattern", "[[rules]]\nprovider = \"systemd\"\ncode = 1\nkind = \"boot_wake\"\npayload_pattern = \"[\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCustomRulesReplaceBuiltins(t *testing.T) {
	path := writeConfig(t, `
[[rules]]
provider = "acpid"
code = 42
kind = "boot_wake"
payload_pattern = "resumed"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.ClassifierRules()
	require.Len(t, rules, 1)
	assert.Equal(t, "acpid", rules[0].Provider)
	assert.Equal(t, 42, rules[0].Code)
	assert.Equal(t, domain.KindBootWake, rules[0].Kind)
	require.NotNil(t, rules[0].PayloadPattern)
	assert.True(t, rules[0].PayloadPattern.MatchString("system resumed"))
}

func TestWriteInitial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goodtimes", "config.toml")

	require.NoError(t, WriteInitial(path))
	assert.Error(t, WriteInitial(path), "must not overwrite")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Tracking.WorkingHours)
	assert.Equal(t, domain.DefaultRules(), cfg.ClassifierRules())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Tracking.WorkingHours = 6.5
	cfg.Tracking.ShowLogoff = true
	cfg.Check.IntervalMinutes = 3
	cfg.Check.Notifier = "console"
	cfg.Sources.Dumps = []string{"/var/backups/journal.json"}
	cfg.Rules = []RuleSpec{{Provider: "acpid", Code: 1, Kind: "boot_wake"}}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.5, got.Tracking.WorkingHours)
	assert.True(t, got.Tracking.ShowLogoff)
	assert.Equal(t, 3, got.Check.IntervalMinutes)
	assert.Equal(t, "console", got.Check.Notifier)
	assert.Equal(t, []string{"/var/backups/journal.json"}, got.Sources.Dumps)
	require.Len(t, got.ClassifierRules(), 1)
	assert.Equal(t, "acpid", got.ClassifierRules()[0].Provider)
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Tracking.Precision = 0

	err = Save(cfg, filepath.Join(t.TempDir(), "config.toml"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestArchivePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := &Config{Archive: ArchiveConfig{Path: "/tmp/custom.db"}}
		got, err := cfg.ArchivePath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.db", got)
	})

	t.Run("xdg data home fallback", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dir)

		cfg := &Config{}
		got, err := cfg.ArchivePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "goodtimes", "events.db"), got)
	})
}
