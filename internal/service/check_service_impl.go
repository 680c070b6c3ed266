package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/mumpitzstuff/goodTimes/internal/accounting"
	"github.com/mumpitzstuff/goodTimes/internal/app"
	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
	"github.com/mumpitzstuff/goodTimes/internal/notify"
	"github.com/mumpitzstuff/goodTimes/internal/timeline"
)

var _ app.CheckUseCase = (*checkService)(nil)

type checkService struct {
	cfg      *config.Config
	fetcher  *eventlog.Fetcher
	rec      *timeline.Reconstructor
	engine   *accounting.Engine
	notifier notify.Notifier
	log      zerolog.Logger
	observer UseCaseObserver
}

func NewCheckService(
	cfg *config.Config,
	fetcher *eventlog.Fetcher,
	notifier notify.Notifier,
	log zerolog.Logger,
	observers ...UseCaseObserver,
) CheckService {
	classifier := domain.NewClassifier(cfg.ClassifierRules(), cfg.Tracking.ShowLogoff)
	return &checkService{
		cfg:      cfg,
		fetcher:  fetcher,
		rec:      timeline.New(classifier, cfg.MergeGap()),
		engine:   accounting.NewEngine(cfg.Tracking, cfg.CheckInterval()),
		notifier: notifier,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *checkService) RunCheck(ctx context.Context, req app.CheckRequest) (resp *app.CheckResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := clockOrNow(req.Now)
	since := windowStart(now, s.cfg.Tracking.HistoryDays)

	var events []domain.Event
	events, err = s.fetcher.Fetch(ctx, eventlog.DefaultFilters(since, s.cfg.Tracking.ShowLogoff))
	if err != nil {
		if errors.Is(err, eventlog.ErrLogUnavailable) {
			err = &app.CheckError{Code: app.CheckErrLogUnavailable, Message: err.Error()}
		} else {
			err = fmt.Errorf("fetching events: %w", err)
		}
		return nil, err
	}

	resp = &app.CheckResponse{GeneratedAt: now, State: accounting.StateNone}

	entries := s.rec.Reconstruct(events, now)
	if len(entries) == 0 {
		fields["state"] = string(resp.State)
		return resp, nil
	}

	latest := entries[len(entries)-1]
	d := s.engine.Derive(latest)
	c := s.engine.Classify(d, now)

	resp.State = c.State
	resp.BookingHours = c.Booking
	resp.Uptime = d.TotalUptime
	resp.Remaining = c.Remaining
	resp.LeaveBy = c.LeaveBy
	resp.Message = checkMessage(c)
	fields["state"] = string(c.State)
	fields["booking_hours"] = c.Booking

	if c.State != accounting.StateNone && s.cfg.Check.Notify && s.notifier != nil {
		nerr := s.notifier.Send(ctx, notify.Notification{
			Title:    "Working time",
			Message:  resp.Message,
			Severity: severityFor(c.State),
		})
		if nerr != nil {
			// Notification is best effort.
			s.log.Warn().Err(nerr).Msg("notification failed")
		} else {
			resp.Notified = true
		}
	}
	return resp, nil
}

func checkMessage(c accounting.Classification) string {
	switch c.State {
	case accounting.StateNormalReached:
		return fmt.Sprintf("Normal working time reached. Leave latest at %s (%d min to the daily maximum).",
			c.LeaveBy.Format("15:04"), wholeMinutes(c.Remaining))
	case accounting.StateMaxApproaching:
		return fmt.Sprintf("Maximum working time reached in %d minutes.", wholeMinutes(c.Remaining))
	case accounting.StateMaxReached:
		exceeded := -wholeMinutes(c.Remaining)
		if exceeded < 0 {
			exceeded = 0
		}
		return fmt.Sprintf("Maximum working time exceeded by %d minutes.", exceeded)
	default:
		return ""
	}
}

func wholeMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

func severityFor(state accounting.State) notify.Severity {
	switch state {
	case accounting.StateMaxReached:
		return notify.SeverityCritical
	case accounting.StateMaxApproaching:
		return notify.SeverityWarning
	default:
		return notify.SeverityInfo
	}
}
