// Package export writes the working-time report to spreadsheet files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

// header is the column set shared by all export formats. It mirrors the
// terminal report, unstyled.
var header = []string{"Date", "Booking Hours", "Flex Hours", "Uptime", "Intervals"}

// dateLayout is the export date column format, kept sortable on purpose.
const dateLayout = "2006-01-02"

// WriteFile writes the report to path, choosing the format by extension.
// Supported: .xlsx and .csv.
func WriteFile(path string, resp *contract.ReportResponse) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeExcel(path, resp)
	case ".csv":
		return writeCSV(path, resp)
	default:
		return fmt.Errorf("unsupported export format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

// row renders one entry into export cells.
func row(e contract.EntryView) []string {
	return []string{
		e.Date.Format(dateLayout),
		fmt.Sprintf("%.2f", e.BookingHours),
		fmt.Sprintf("%+.2f", e.FlexHours),
		clock(e.Uptime),
		e.IntervalSummary,
	}
}

// totalsRow renders the report footer.
func totalsRow(resp *contract.ReportResponse) []string {
	return []string{
		"Total",
		fmt.Sprintf("%.2f", resp.TotalBookingHours),
		fmt.Sprintf("%+.2f", resp.TotalFlexHours),
		"",
		fmt.Sprintf("%d days", len(resp.Entries)),
	}
}

// clock renders a duration as "H:MM". Negative durations keep their sign so
// clock anomalies stay visible in exports.
func clock(d time.Duration) string {
	min := int(d.Round(time.Minute).Minutes())
	sign := ""
	if min < 0 {
		sign = "-"
		min = -min
	}
	return fmt.Sprintf("%s%d:%02d", sign, min/60, min%60)
}
