package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/accounting"
	"github.com/mumpitzstuff/goodTimes/internal/app"
	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
	"github.com/mumpitzstuff/goodTimes/internal/timeline"
)

var _ app.ReportUseCase = (*reportService)(nil)

type reportService struct {
	cfg     *config.Config
	fetcher *eventlog.Fetcher
	rec     *timeline.Reconstructor
	engine  *accounting.Engine
}

func NewReportService(cfg *config.Config, fetcher *eventlog.Fetcher) ReportService {
	classifier := domain.NewClassifier(cfg.ClassifierRules(), cfg.Tracking.ShowLogoff)
	return &reportService{
		cfg:     cfg,
		fetcher: fetcher,
		rec:     timeline.New(classifier, cfg.MergeGap()),
		engine:  accounting.NewEngine(cfg.Tracking, cfg.CheckInterval()),
	}
}

func (s *reportService) BuildReport(ctx context.Context, req app.ReportRequest) (*app.ReportResponse, error) {
	now := clockOrNow(req.Now)

	days := req.Days
	if days <= 0 {
		days = s.cfg.Tracking.HistoryDays
	}
	since := windowStart(now, days)

	events, err := s.fetcher.Fetch(ctx, eventlog.DefaultFilters(since, s.cfg.Tracking.ShowLogoff))
	if err != nil {
		if errors.Is(err, eventlog.ErrLogUnavailable) {
			return nil, &app.ReportError{Code: app.ReportErrLogUnavailable, Message: err.Error()}
		}
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	entries := s.rec.Reconstruct(events, now)

	resp := &app.ReportResponse{GeneratedAt: now, Since: since}
	for _, entry := range entries {
		d := s.engine.Derive(entry)
		weekday := entry.Date.Weekday()

		resp.Entries = append(resp.Entries, app.EntryView{
			Date:            entry.Date,
			BookingHours:    d.BookingHours,
			FlexHours:       d.FlexHours,
			Uptime:          d.TotalUptime,
			IntervalSummary: d.IntervalSummary,
			Anomalous:       d.Anomalous,
			Weekend:         weekday == time.Saturday || weekday == time.Sunday,
		})
		resp.TotalBookingHours += d.BookingHours
		resp.TotalFlexHours += d.FlexHours

		for _, iv := range entry.Intervals {
			if iv.End.Before(iv.Start) {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf(
					"clock anomaly on %s: interval %s-%s runs backward",
					entry.Date.Format("2006-01-02"),
					iv.Start.Format("15:04"), iv.End.Format("15:04"),
				))
			}
		}
	}

	// Re-round the summed totals to strip accumulated float noise.
	resp.TotalBookingHours = accounting.Round(resp.TotalBookingHours, s.cfg.Tracking.Precision)
	resp.TotalFlexHours = accounting.Round(resp.TotalFlexHours, s.cfg.Tracking.Precision)
	return resp, nil
}
