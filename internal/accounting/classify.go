package accounting

import "time"

// State is the threshold classification of the running day.
type State string

const (
	StateNone           State = "none"
	StateNormalReached  State = "normal_reached"
	StateMaxApproaching State = "max_approaching"
	StateMaxReached     State = "max_reached"
)

// Classification is the outcome of checking the most recent entry against the
// working-time thresholds.
type Classification struct {
	State State
	// Booking is the booking hours the classification was made on.
	Booking float64
	// Remaining is the projected uptime left until the daily maximum.
	// Negative once the maximum has been exceeded.
	Remaining time.Duration
	// LeaveBy is the projected latest departure time, now plus Remaining.
	LeaveBy time.Time
}

// Classify evaluates d against the thresholds. The states are checked in
// fixed precedence: reaching the contracted hours is only reported within one
// polling window so the notification fires once, the maximum being exceeded
// beats the pre-warning, and the boundary between the two is inclusive on the
// exceeded side.
func (e *Engine) Classify(d Derived, now time.Time) Classification {
	remaining := e.remaining(d)
	c := Classification{
		State:     StateNone,
		Booking:   d.BookingHours,
		Remaining: remaining,
		LeaveBy:   now.Add(remaining),
	}

	window := e.checkWindow.Hours()
	switch {
	case d.BookingHours >= e.cfg.WorkingHours && d.BookingHours < e.cfg.WorkingHours+window:
		c.State = StateNormalReached
	case d.BookingHours >= e.cfg.MaxHours:
		c.State = StateMaxReached
	case d.BookingHours >= e.cfg.MaxHours-0.25:
		c.State = StateMaxApproaching
	}
	return c
}

// remaining projects how much longer the machine can stay up before booking
// hours hit the daily maximum. Breaks that have not been deducted yet will be
// deducted on the way there, so their minutes are added back.
func (e *Engine) remaining(d Derived) time.Duration {
	uptimeHours := d.UptimeHours()
	left := e.cfg.MaxHours*60 - d.TotalUptime.Minutes()
	if uptimeHours < e.cfg.BreakfastThreshold {
		left += e.cfg.BreakfastBreak * 60
	}
	if uptimeHours < e.cfg.LunchThreshold {
		left += e.cfg.LunchBreak * 60
	}
	return time.Duration(left * float64(time.Minute))
}
