package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderGroupedTable(headers, [][][]string{rows})
}

// RenderGroupedTable renders rows in groups separated by a dim rule, with
// column widths computed across all groups. The report uses one group per
// calendar week.
func RenderGroupedTable(headers []string, groups [][][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, groups)

	var b strings.Builder

	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == len(headers)-1)
	}
	b.WriteString("\n")
	writeRule(&b, widths)

	for gi, rows := range groups {
		if gi > 0 {
			writeRule(&b, widths)
		}
		for _, row := range rows {
			for i := range headers {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				writeCell(&b, cell, lipgloss.Width(cell), widths[i], i == len(headers)-1)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// columnWidths measures the widest visible cell per column, escape
// sequences excluded.
func columnWidths(headers []string, groups [][][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, rows := range groups {
		for _, row := range rows {
			for i := 0; i < len(widths) && i < len(row); i++ {
				if w := lipgloss.Width(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

func writeCell(b *strings.Builder, cell string, visible, width int, last bool) {
	b.WriteString(cell)
	if last {
		return
	}
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad+colGap))
}

func writeRule(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
