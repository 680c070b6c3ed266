package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

// FormatReport renders the work entry table. Entries come in oldest first and
// are grouped by calendar week: a separator rule is inserted whenever the ISO
// weekday number decreases from one row to the next. dateFormat is the time
// layout for the date column; empty selects DefaultDateFormat.
func FormatReport(resp *contract.ReportResponse, dateFormat string) string {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	var b strings.Builder

	if len(resp.Entries) == 0 {
		b.WriteString(Dim("No events in the reporting window.") + "\n")
		return RenderBox("Working Time", b.String())
	}

	headers := []string{"DATE", "BOOKED", "FLEX", "UPTIME", "INTERVALS"}

	var groups [][][]string
	var current [][]string
	prevWeekday := 0
	for _, e := range resp.Entries {
		wd := isoWeekday(e.Date)
		if len(current) > 0 && wd < prevWeekday {
			groups = append(groups, current)
			current = nil
		}
		prevWeekday = wd
		current = append(current, reportRow(e, dateFormat))
	}
	groups = append(groups, current)

	b.WriteString(RenderGroupedTable(headers, groups))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s booked, %s flex %s\n",
		Bold("TOTAL"),
		StyleFg.Render(FormatHours(resp.TotalBookingHours)+" h"),
		FlexCell(resp.TotalFlexHours),
		Dim(fmt.Sprintf("(%d days)", len(resp.Entries))),
	))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox("Working Time", b.String())
}

func reportRow(e contract.EntryView, dateFormat string) []string {
	date := e.Date.Format(dateFormat)
	dateCell := StyleFg.Render(date)
	if e.Weekend {
		dateCell = StylePurple.Render(date)
	}

	uptime := FormatClock(e.Uptime)
	uptimeCell := StyleFg.Render(uptime)
	if e.Anomalous {
		uptimeCell = StyleRed.Render(uptime + " !")
	}

	return []string{
		dateCell,
		StyleFg.Render(FormatHours(e.BookingHours)),
		FlexCell(e.FlexHours),
		uptimeCell,
		Dim(e.IntervalSummary),
	}
}

// isoWeekday returns the ISO 8601 weekday number, Monday 1 through Sunday 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
