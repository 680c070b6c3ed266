package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDateFormat is the report date column layout.
const DefaultDateFormat = "Mon 2006-01-02"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders decimal hours with two places, e.g. "8.25".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// FormatSignedHours renders decimal hours with an explicit sign, e.g. "+0.25".
// Exactly zero renders without a sign.
func FormatSignedHours(h float64) string {
	if h == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%+.2f", h)
}

// FlexCell renders a flex-time value signed and colored by its sign.
func FlexCell(flex float64) string {
	return FlexStyle(flex).Render(FormatSignedHours(flex))
}

// FormatClock renders a duration as "H:MM" wall-clock style, e.g. "8:30".
// Negative durations keep their sign.
func FormatClock(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%s%d:%02d", sign, h, m)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
