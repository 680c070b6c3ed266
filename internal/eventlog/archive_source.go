package eventlog

import (
	"context"
	"fmt"

	"github.com/mumpitzstuff/goodTimes/internal/archive"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// ArchiveSource serves previously archived events. It backfills windows the
// live journal no longer covers.
type ArchiveSource struct {
	store *archive.Store
}

// NewArchiveSource builds a source over an open archive store.
func NewArchiveSource(store *archive.Store) *ArchiveSource {
	return &ArchiveSource{store: store}
}

func (s *ArchiveSource) Name() string { return "archive" }

func (s *ArchiveSource) Events(ctx context.Context, filters []ProviderFilter) ([]domain.Event, error) {
	events, err := s.store.EventsSince(ctx, earliestSince(filters))
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	var kept []domain.Event
	for _, ev := range events {
		if matches(ev, filters) {
			kept = append(kept, ev)
		}
	}
	return kept, nil
}
