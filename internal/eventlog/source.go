// Package eventlog fetches power and session events from the systemd journal
// and related sources and merges them into one ascending stream.
package eventlog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// ErrLogUnavailable is returned when no configured source can be read at all.
var ErrLogUnavailable = errors.New("event log unavailable")

// ProviderFilter selects events of one provider by code set and minimum age.
type ProviderFilter struct {
	Provider string
	Codes    []int
	Since    time.Time
}

// DefaultFilters returns the filter set for the standard providers. Session
// open, close and lock events are only fetched when lock tracking is on.
func DefaultFilters(since time.Time, showLogoff bool) []ProviderFilter {
	filters := []ProviderFilter{
		{
			Provider: domain.ProviderSystemd,
			Codes:    []int{domain.CodeStartupFinished, domain.CodeShutdownInitiated},
			Since:    since,
		},
		{
			Provider: domain.ProviderSleep,
			Codes:    []int{domain.CodeSleepEntered, domain.CodeSleepResumed},
			Since:    since,
		},
	}
	if showLogoff {
		filters = append(filters, ProviderFilter{
			Provider: domain.ProviderLogind,
			Codes:    []int{domain.CodeSessionOpened, domain.CodeSessionClosed, domain.CodeSessionLockChanged},
			Since:    since,
		})
	}
	return filters
}

// Source is one queryable event log.
type Source interface {
	Name() string
	Events(ctx context.Context, filters []ProviderFilter) ([]domain.Event, error)
}

// Fetcher queries several sources and merge-sorts their output.
type Fetcher struct {
	sources []Source
	log     zerolog.Logger
}

// NewFetcher builds a fetcher over the given sources.
func NewFetcher(log zerolog.Logger, sources ...Source) *Fetcher {
	return &Fetcher{sources: sources, log: log}
}

// Fetch returns the merged events of all sources, ascending by timestamp.
// A failing source is skipped with a warning; Fetch itself only fails when
// every source is unreadable.
func (f *Fetcher) Fetch(ctx context.Context, filters []ProviderFilter) ([]domain.Event, error) {
	if len(f.sources) == 0 {
		return nil, fmt.Errorf("%w: no sources configured", ErrLogUnavailable)
	}

	var (
		events []domain.Event
		errs   []error
	)
	for _, src := range f.sources {
		evs, err := src.Events(ctx, filters)
		if err != nil {
			f.log.Warn().Str("source", src.Name()).Err(err).Msg("event source failed, skipping")
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		f.log.Debug().Str("source", src.Name()).Int("events", len(evs)).Msg("fetched events")
		events = append(events, evs...)
	}
	if len(errs) == len(f.sources) {
		return nil, fmt.Errorf("%w: %w", ErrLogUnavailable, errors.Join(errs...))
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.Provider != b.Provider {
			return a.Provider < b.Provider
		}
		return a.Code < b.Code
	})
	return dedupe(events), nil
}

// dedupe drops exact repeats of (provider, code, timestamp), which appear
// wherever the live journal and the archive overlap. Expects sorted input.
func dedupe(events []domain.Event) []domain.Event {
	if len(events) < 2 {
		return events
	}
	out := events[:1]
	for _, ev := range events[1:] {
		prev := out[len(out)-1]
		if ev.Provider == prev.Provider && ev.Code == prev.Code && ev.Timestamp.Equal(prev.Timestamp) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// matches reports whether ev passes any of the filters.
func matches(ev domain.Event, filters []ProviderFilter) bool {
	for _, f := range filters {
		if f.Provider != ev.Provider || ev.Timestamp.Before(f.Since) {
			continue
		}
		for _, c := range f.Codes {
			if c == ev.Code {
				return true
			}
		}
	}
	return false
}

// earliestSince returns the oldest lower bound of the filter set.
func earliestSince(filters []ProviderFilter) time.Time {
	var min time.Time
	for i, f := range filters {
		if i == 0 || f.Since.Before(min) {
			min = f.Since
		}
	}
	return min
}
