// Package notify delivers threshold warnings to the user.
package notify

import "context"

// Severity steers urgency and persistence of a notification.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Notification is one user-facing warning.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
}

// Notifier delivers notifications.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Multi fans one notification out to several notifiers.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, n Notification) error {
	var firstErr error
	for _, notifier := range m {
		if err := notifier.Send(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
