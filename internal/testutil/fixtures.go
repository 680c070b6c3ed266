// Package testutil provides shared fixtures for goodtimes tests: a fixed
// reference workday, event builders for the normalized providers and a
// ready-made configuration with predictable accounting values.
package testutil

import (
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// Monday is a fixed reference workday (2024-03-11 fell on a Monday).
var Monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

// At places a clock time on the calendar day of base.
func At(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

// Boot returns a startup-finished event.
func Boot(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSystemd, Code: domain.CodeStartupFinished, Timestamp: ts}
}

// Shutdown returns a shutdown-initiated event.
func Shutdown(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSystemd, Code: domain.CodeShutdownInitiated, Timestamp: ts}
}

// Suspend returns a sleep-entered event.
func Suspend(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSleep, Code: domain.CodeSleepEntered, Timestamp: ts}
}

// Resume returns a sleep-resumed event.
func Resume(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSleep, Code: domain.CodeSleepResumed, Timestamp: ts}
}

// Locked returns a session lock event. It only classifies as a stop when
// show_logoff is enabled.
func Locked(ts time.Time) domain.Event {
	return domain.Event{
		Provider:  domain.ProviderLogind,
		Code:      domain.CodeSessionLockChanged,
		Timestamp: ts,
		Payload:   "Session 3 of user worker locked.",
	}
}

// Unlocked returns a session unlock event.
func Unlocked(ts time.Time) domain.Event {
	return domain.Event{
		Provider:  domain.ProviderLogind,
		Code:      domain.CodeSessionLockChanged,
		Timestamp: ts,
		Payload:   "Session 3 of user worker unlocked.",
	}
}

// TestConfig returns a configuration with the standard 8h/10h day, both
// breaks enabled and quarter-hour rounding. Intervals stay unjoined so tests
// see real gaps.
func TestConfig() *config.Config {
	return &config.Config{
		Tracking: config.TrackingConfig{
			HistoryDays:        14,
			WorkingHours:       8,
			MaxHours:           10,
			BreakfastBreak:     0.25,
			BreakfastThreshold: 4,
			LunchBreak:         0.5,
			LunchThreshold:     6,
			Precision:          4,
			JoinIntervals:      false,
			ShowLogoff:         false,
			MergeGapMinutes:    10,
		},
		Sources: config.SourcesConfig{Journal: false},
		Check:   config.CheckConfig{IntervalMinutes: 5, Notify: true, Notifier: "log"},
		Archive: config.ArchiveConfig{RetentionDays: 30},
		Logging: config.LoggingConfig{Level: "warn", Format: "text"},
	}
}
