package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// ConsoleNotifier writes notifications to a terminal stream.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier builds a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (c *ConsoleNotifier) Send(_ context.Context, n Notification) error {
	if _, err := fmt.Fprintf(c.out, "[%s] %s: %s\n", n.Severity, n.Title, n.Message); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}
	return nil
}

// LogNotifier records notifications in the structured log. It backs the
// headless check runs where no desktop session is reachable.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier builds a notifier writing to log.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Send(_ context.Context, n Notification) error {
	ev := l.log.Info()
	switch n.Severity {
	case SeverityWarning:
		ev = l.log.Warn()
	case SeverityCritical:
		ev = l.log.Error()
	}
	ev.Str("title", n.Title).Msg(n.Message)
	return nil
}
