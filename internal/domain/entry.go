package domain

import "time"

// Interval is one contiguous active session bounded by a start and a stop
// transition. End may precede Start when the system clock jumped between the
// two events; such intervals are preserved as observed and flagged downstream.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End minus Start. Negative when the clock moved backward.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// WorkEntry is one reconstructed day of activity: intervals in chronological
// order, earliest first. Date is the calendar day of the earliest start,
// truncated to local midnight.
type WorkEntry struct {
	Date      time.Time
	Intervals []Interval
}

// First returns the earliest interval. Entries are never built empty.
func (e WorkEntry) First() Interval {
	return e.Intervals[0]
}

// Last returns the latest interval.
func (e WorkEntry) Last() Interval {
	return e.Intervals[len(e.Intervals)-1]
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates t to 00:00 of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
