package testutil

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
)

// StubSource is a scripted eventlog.Source. It returns its events verbatim
// and records the filters of the last query.
type StubSource struct {
	SourceName string
	EventList  []domain.Event
	Err        error

	GotFilters []eventlog.ProviderFilter
}

func (s *StubSource) Name() string {
	if s.SourceName == "" {
		return "stub"
	}
	return s.SourceName
}

func (s *StubSource) Events(_ context.Context, filters []eventlog.ProviderFilter) ([]domain.Event, error) {
	s.GotFilters = filters
	if s.Err != nil {
		return nil, s.Err
	}
	return s.EventList, nil
}

// NewTestFetcher builds a fetcher over the given sources with a silent logger.
func NewTestFetcher(sources ...eventlog.Source) *eventlog.Fetcher {
	return eventlog.NewFetcher(zerolog.Nop(), sources...)
}
