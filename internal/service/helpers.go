package service

import (
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// clockOrNow resolves the injected test clock.
func clockOrNow(injected *time.Time) time.Time {
	if injected != nil {
		return *injected
	}
	return time.Now()
}

// windowStart returns the lower bound of a look-back of days, aligned to
// local midnight so the oldest day is never cut off mid-day.
func windowStart(now time.Time, days int) time.Time {
	return domain.Midnight(now.AddDate(0, 0, -days))
}
