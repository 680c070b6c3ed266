package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/app"
	"github.com/mumpitzstuff/goodTimes/internal/archive"
	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
)

var _ app.ArchiveUseCase = (*archiveService)(nil)

type archiveService struct {
	cfg      *config.Config
	fetcher  *eventlog.Fetcher
	store    *archive.Store
	path     string
	observer UseCaseObserver
}

// NewArchiveService builds the archive use cases. The fetcher must not
// include the archive itself as a source.
func NewArchiveService(
	cfg *config.Config,
	fetcher *eventlog.Fetcher,
	store *archive.Store,
	path string,
	observers ...UseCaseObserver,
) ArchiveService {
	return &archiveService{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    store,
		path:     path,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *archiveService) Snapshot(ctx context.Context, req app.SnapshotRequest) (resp *app.SnapshotResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "archive-snapshot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := clockOrNow(req.Now)
	since := windowStart(now, s.cfg.Tracking.HistoryDays)

	// Session and lock events are archived regardless of show_logoff, so the
	// flag can be flipped later without a hole in the history.
	var events []domain.Event
	events, err = s.fetcher.Fetch(ctx, eventlog.DefaultFilters(since, true))
	if err != nil {
		if errors.Is(err, eventlog.ErrLogUnavailable) {
			err = &app.ArchiveError{Code: app.ArchiveErrLogUnavailable, Message: err.Error()}
		} else {
			err = fmt.Errorf("fetching events: %w", err)
		}
		return nil, err
	}

	var inserted int
	inserted, err = s.store.BatchInsert(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("archiving events: %w", err)
	}

	var total int
	total, err = s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting archive: %w", err)
	}

	fields["fetched"] = len(events)
	fields["inserted"] = inserted
	return &app.SnapshotResponse{Fetched: len(events), Inserted: inserted, Total: total}, nil
}

func (s *archiveService) Prune(ctx context.Context, req app.PruneRequest) (resp *app.PruneResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "archive-prune",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	keep := req.KeepDays
	if keep <= 0 {
		keep = s.cfg.Archive.RetentionDays
	}
	if keep <= 0 {
		err = &app.ArchiveError{
			Code:    app.ArchiveErrNoRetention,
			Message: "no keep days given and archive retention_days not configured",
		}
		return nil, err
	}

	now := clockOrNow(req.Now)
	cutoff := now.AddDate(0, 0, -keep)

	var removed int
	removed, err = s.store.Prune(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("pruning archive: %w", err)
	}

	var remaining int
	remaining, err = s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting archive: %w", err)
	}

	fields["removed"] = removed
	return &app.PruneResponse{Cutoff: cutoff, Removed: removed, Remaining: remaining}, nil
}

func (s *archiveService) Info(ctx context.Context) (*app.ArchiveInfo, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting archive: %w", err)
	}

	info := &app.ArchiveInfo{Path: s.path, Count: count}

	oldest, newest, ok, err := s.store.Bounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading archive bounds: %w", err)
	}
	if ok {
		info.Oldest = &oldest
		info.Newest = &newest
	}
	return info, nil
}
