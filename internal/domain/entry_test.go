package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalDuration(t *testing.T) {
	start := time.Date(2024, 3, 11, 8, 0, 0, 0, time.Local)

	iv := Interval{Start: start, End: start.Add(90 * time.Minute)}
	assert.Equal(t, 90*time.Minute, iv.Duration())

	backwards := Interval{Start: start, End: start.Add(-10 * time.Minute)}
	assert.Equal(t, -10*time.Minute, backwards.Duration())
}

func TestWorkEntryFirstLast(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	e := WorkEntry{
		Date: day,
		Intervals: []Interval{
			{Start: day.Add(8 * time.Hour), End: day.Add(12 * time.Hour)},
			{Start: day.Add(13 * time.Hour), End: day.Add(17 * time.Hour)},
		},
	}

	assert.Equal(t, day.Add(8*time.Hour), e.First().Start)
	assert.Equal(t, day.Add(17*time.Hour), e.Last().End)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 11, 23, 59, 0, 0, time.Local)
	b := time.Date(2024, 3, 11, 0, 1, 0, 0, time.Local)
	c := time.Date(2024, 3, 12, 0, 1, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	ts := time.Date(2024, 3, 11, 17, 42, 13, 500, loc)

	got := Midnight(ts)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
