package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

const checkBarWidth = 20

// FormatCheck renders the outcome of a threshold check. working and max are
// the configured daily hours, used for the progress bar.
func FormatCheck(resp *contract.CheckResponse, working, max float64) string {
	var b strings.Builder

	if resp.LeaveBy.IsZero() {
		b.WriteString(Dim("No session data for today.") + "\n")
		return RenderBox("Check", b.String())
	}

	b.WriteString(StateIndicator(resp.State) + "\n\n")
	b.WriteString(RenderDayProgress(resp.BookingHours, working, max, checkBarWidth) + "\n\n")

	writeField(&b, "Booked", FormatHours(resp.BookingHours)+" h")
	writeField(&b, "Uptime", FormatClock(resp.Uptime))
	if resp.Remaining > 0 {
		writeField(&b, "Remaining", FormatMinutes(wholeMinutes(resp.Remaining)))
		writeField(&b, "Leave by", resp.LeaveBy.Format("15:04"))
	} else {
		writeField(&b, "Exceeded", FormatMinutes(-wholeMinutes(resp.Remaining)))
	}

	if resp.Message != "" {
		b.WriteString("\n")
		b.WriteString(Bold(resp.Message) + "\n")
	}

	return RenderBox("Check", b.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", label)), StyleFg.Render(value)))
}

func wholeMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
