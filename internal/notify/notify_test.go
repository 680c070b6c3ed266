package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	err := n.Send(context.Background(), Notification{
		Title:    "Working time",
		Message:  "maximum reached in 15 minutes",
		Severity: SeverityWarning,
	})

	require.NoError(t, err)
	assert.Equal(t, "[warning] Working time: maximum reached in 15 minutes\n", buf.String())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	err := n.Send(context.Background(), Notification{
		Title:    "Working time",
		Message:  "go home",
		Severity: SeverityCritical,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "go home")
}

type stubNotifier struct {
	sent []Notification
	err  error
}

func (s *stubNotifier) Send(_ context.Context, n Notification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func TestMultiFansOut(t *testing.T) {
	a := &stubNotifier{}
	b := &stubNotifier{err: errors.New("daemon unreachable")}
	c := &stubNotifier{}

	err := Multi{a, b, c}.Send(context.Background(), Notification{Title: "t"})

	assert.EqualError(t, err, "daemon unreachable")
	assert.Len(t, a.sent, 1)
	assert.Len(t, c.sent, 1, "later notifiers still run after a failure")
}

func TestUrgencyMapping(t *testing.T) {
	assert.Equal(t, "low", urgency(SeverityInfo))
	assert.Equal(t, "normal", urgency(SeverityWarning))
	assert.Equal(t, "critical", urgency(SeverityCritical))

	assert.Equal(t, "0", expireMillis(SeverityCritical))
	assert.Equal(t, "10000", expireMillis(SeverityInfo))
}
