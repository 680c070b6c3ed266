package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"D", "LONGER"},
		[][]string{{"value", "x"}},
	))

	want := "D      LONGER\n" +
		"─────  ──────\n" +
		"value  x\n"
	assert.Equal(t, want, out)
}

func TestRenderGroupedTable_RuleBetweenGroups(t *testing.T) {
	out := stripANSI(RenderGroupedTable(
		[]string{"AA", "BB"},
		[][][]string{
			{{"11", "22"}},
			{{"33", "44"}},
		},
	))

	want := "AA  BB\n" +
		"──  ──\n" +
		"11  22\n" +
		"──  ──\n" +
		"33  44\n"
	assert.Equal(t, want, out)
}

func TestRenderGroupedTable_ShortRowsArePadded(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{"only"}},
	))

	assert.Contains(t, out, "only")
	assert.NotContains(t, out, "<nil>")
}

func TestRenderGroupedTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderGroupedTable(nil, nil))
}

func TestRenderDayProgress(t *testing.T) {
	out := stripANSI(RenderDayProgress(8, 8, 10, 10))
	assert.Equal(t, "[████████░░] 8.00/10.00", out)

	empty := stripANSI(RenderDayProgress(0, 8, 10, 10))
	assert.Equal(t, "[░░░░░░░░░░] 0.00/10.00", empty)

	// Past the maximum the bar clamps at full width.
	over := stripANSI(RenderDayProgress(12, 8, 10, 10))
	assert.Equal(t, "[██████████] 12.00/10.00", over)
}

func TestStateIndicator(t *testing.T) {
	tests := []struct {
		state contract.ThresholdState
		want  string
	}{
		{contract.StateNone, "● ON THE CLOCK"},
		{contract.StateNormalReached, "● TARGET REACHED"},
		{contract.StateMaxApproaching, "● MAX APPROACHING"},
		{contract.StateMaxReached, "● MAX REACHED"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripANSI(StateIndicator(tt.state)))
	}
}
