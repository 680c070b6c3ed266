package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
	"github.com/mumpitzstuff/goodTimes/internal/notify"
)

// monday is a fixed reference workday (2024-03-11 fell on a Monday).
var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

func boot(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSystemd, Code: domain.CodeStartupFinished, Timestamp: ts}
}

func shutdown(ts time.Time) domain.Event {
	return domain.Event{Provider: domain.ProviderSystemd, Code: domain.CodeShutdownInitiated, Timestamp: ts}
}

func testConfig() *config.Config {
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
		Check:   config.CheckConfig{IntervalMinutes: 5, Notify: true},
		Logging: config.LoggingConfig{Level: "warn", Format: "text"},
	}
}

type stubSource struct {
	name       string
	events     []domain.Event
	err        error
	gotFilters []eventlog.ProviderFilter
}

func (s *stubSource) Name() string {
	if s.name == "" {
		return "stub"
	}
	return s.name
}

func (s *stubSource) Events(_ context.Context, filters []eventlog.ProviderFilter) ([]domain.Event, error) {
	s.gotFilters = filters
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func newTestFetcher(sources ...eventlog.Source) *eventlog.Fetcher {
	return eventlog.NewFetcher(zerolog.Nop(), sources...)
}

type captureNotifier struct {
	sent []notify.Notification
	err  error
}

func (c *captureNotifier) Send(_ context.Context, n notify.Notification) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, n)
	return nil
}

type captureObserver struct {
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(_ context.Context, ev UseCaseEvent) {
	c.events = append(c.events, ev)
}
