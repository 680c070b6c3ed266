// Package timeline reconstructs daily work entries from a classified stream
// of power and session events.
package timeline

import (
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// Reconstructor pairs stop events with start events, walking the stream from
// the most recent event backward. It is a pure function of its inputs: the
// same events, clock and configuration always produce the same entries.
type Reconstructor struct {
	classifier *domain.Classifier
	mergeGap   time.Duration
}

// New builds a reconstructor. Gaps shorter than mergeGap are treated as clock
// noise and folded into the surrounding interval.
func New(classifier *domain.Classifier, mergeGap time.Duration) *Reconstructor {
	return &Reconstructor{classifier: classifier, mergeGap: mergeGap}
}

// Reconstruct turns events, ascending by timestamp, into work entries ordered
// oldest day first.
//
// The most recent session is assumed to still be running, so its stop is
// synthesized at now. Every other interval needs a genuine stop and start;
// events that classify as neither are skipped, and consecutive starts (crash,
// unclean shutdown) collapse onto the most recent one. When the remaining
// events cannot complete a pair the scan simply stops and the entries built
// so far are returned. A truncated log is a normal condition, not an error.
//
// Intervals whose stop precedes their start (clock jumps, NTP corrections)
// are kept as observed; flagging them is the renderer's business.
func (r *Reconstructor) Reconstruct(events []domain.Event, now time.Time) []domain.WorkEntry {
	// Built newest day first, reversed before returning.
	var built []domain.WorkEntry
	i := len(events) - 1
	first := true

	for i >= 1 {
		end := now
		if first {
			first = false
		} else {
			for i >= 0 && !r.classifier.Classify(events[i]).IsStop() {
				i--
			}
			if i < 0 {
				break
			}
			end = events[i].Timestamp
			i--
		}

		for i >= 0 && !r.classifier.Classify(events[i]).IsStart() {
			i--
		}
		if i < 0 {
			break
		}
		start := events[i].Timestamp
		i--

		built = r.place(built, domain.Interval{Start: start, End: end})
	}

	entries := make([]domain.WorkEntry, 0, len(built))
	for idx := len(built) - 1; idx >= 0; idx-- {
		e := built[idx]
		e.Date = domain.Midnight(e.Intervals[0].Start)
		entries = append(entries, e)
	}
	return entries
}

// place decides where iv belongs relative to the most recently built entry,
// which is chronologically later since the scan walks backward. An interval
// joins that entry when it falls on the same calendar day, or when the gap
// between them is below the merge threshold (a session continuing across
// midnight). Within an entry, a short gap coalesces into the later interval
// while a real break is kept as a separate interval.
func (r *Reconstructor) place(built []domain.WorkEntry, iv domain.Interval) []domain.WorkEntry {
	if len(built) == 0 {
		return append(built, domain.WorkEntry{Intervals: []domain.Interval{iv}})
	}

	last := &built[len(built)-1]
	earliest := last.Intervals[0].Start
	gap := earliest.Sub(iv.End)

	if !domain.SameDay(iv.Start, earliest) && gap >= r.mergeGap {
		return append(built, domain.WorkEntry{Intervals: []domain.Interval{iv}})
	}
	if gap < r.mergeGap {
		last.Intervals[0].Start = iv.Start
		return built
	}
	last.Intervals = append([]domain.Interval{iv}, last.Intervals...)
	return built
}
