// Package accounting turns reconstructed work entries into booking hours,
// flex time and threshold warnings.
package accounting

import (
	"math"
	"strings"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/config"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// Derived holds the computed attributes of one work entry.
type Derived struct {
	// TotalUptime spans first start to last end when intervals are joined,
	// otherwise it is the sum of the individual interval durations.
	TotalUptime time.Duration
	// BookingHours is uptime minus applicable breaks, rounded.
	BookingHours float64
	// FlexHours is booking hours minus the contracted working hours.
	FlexHours float64
	// IntervalSummary is the "HH:MM-HH:MM" rendering of the entry.
	IntervalSummary string
	// Anomalous is set when any interval runs backward, the trace of a
	// clock jump between its start and stop events.
	Anomalous bool
}

// UptimeHours returns the uptime in decimal hours.
func (d Derived) UptimeHours() float64 {
	return d.TotalUptime.Hours()
}

// Engine computes derived attributes against a fixed configuration.
type Engine struct {
	cfg         config.TrackingConfig
	checkWindow time.Duration
}

// NewEngine builds an accounting engine. checkWindow is the polling period of
// the threshold check; it bounds the detection window for the normal-worktime
// state.
func NewEngine(cfg config.TrackingConfig, checkWindow time.Duration) *Engine {
	return &Engine{cfg: cfg, checkWindow: checkWindow}
}

// Derive computes the attributes of one entry.
func (e *Engine) Derive(entry domain.WorkEntry) Derived {
	var uptime time.Duration
	if e.cfg.JoinIntervals {
		uptime = entry.Last().End.Sub(entry.First().Start)
	} else {
		for _, iv := range entry.Intervals {
			uptime += iv.Duration()
		}
	}

	uptimeHours := uptime.Hours()
	booking := uptimeHours
	if uptimeHours >= e.cfg.BreakfastThreshold {
		booking -= e.cfg.BreakfastBreak
	}
	if uptimeHours >= e.cfg.LunchThreshold {
		booking -= e.cfg.LunchBreak
	}
	booking = Round(booking, e.cfg.Precision)

	anomalous := false
	for _, iv := range entry.Intervals {
		if iv.End.Before(iv.Start) {
			anomalous = true
			break
		}
	}

	return Derived{
		TotalUptime:     uptime,
		BookingHours:    booking,
		FlexHours:       booking - e.cfg.WorkingHours,
		IntervalSummary: e.summarize(entry),
		Anomalous:       anomalous,
	}
}

// summarize renders the interval list, collapsed to one span when the day is
// booked as a single block.
func (e *Engine) summarize(entry domain.WorkEntry) string {
	if e.cfg.JoinIntervals {
		return span(entry.First().Start, entry.Last().End)
	}
	parts := make([]string, 0, len(entry.Intervals))
	for _, iv := range entry.Intervals {
		parts = append(parts, span(iv.Start, iv.End))
	}
	return strings.Join(parts, ", ")
}

func span(start, end time.Time) string {
	return start.Format("15:04") + "-" + end.Format("15:04")
}

// Round rounds x to the nearest multiple of 1/precision, half away from zero.
// Precision 4 books quarter hours, 60 books minutes, 1 whole hours.
func Round(x float64, precision int) float64 {
	p := float64(precision)
	return math.Round(x*p) / p
}
