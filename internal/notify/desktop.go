package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// DesktopNotifier shells out to notify-send, which reaches whatever
// notification daemon the desktop session runs.
type DesktopNotifier struct {
	log zerolog.Logger
}

// NewDesktopNotifier builds a desktop notifier.
func NewDesktopNotifier(log zerolog.Logger) *DesktopNotifier {
	return &DesktopNotifier{log: log}
}

func (d *DesktopNotifier) Send(ctx context.Context, n Notification) error {
	args := []string{
		"--app-name", "goodtimes",
		"--urgency", urgency(n.Severity),
		"--expire-time", expireMillis(n.Severity),
		n.Title,
		n.Message,
	}
	cmd := exec.CommandContext(ctx, "notify-send", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	d.log.Debug().Str("title", n.Title).Str("severity", string(n.Severity)).Msg("desktop notification sent")
	return nil
}

func urgency(s Severity) string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "normal"
	default:
		return "low"
	}
}

// expireMillis keeps critical warnings on screen until dismissed.
func expireMillis(s Severity) string {
	if s == SeverityCritical {
		return "0"
	}
	return "10000"
}
