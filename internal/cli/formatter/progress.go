package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderDayProgress renders the booked share of the daily maximum as a bar
// like [██████░░░░] 8.00/10.00. Green below the contracted hours, yellow
// between contracted and maximum, red at or past the maximum.
func RenderDayProgress(booked, working, max float64, width int) string {
	if width < 2 {
		width = 2
	}

	pct := 0.0
	if max > 0 {
		pct = booked / max
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if booked >= max {
		style = StyleRed
	} else if booked >= working {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s/%s", style.Render(bar), FormatHours(booked), FormatHours(max))
}
