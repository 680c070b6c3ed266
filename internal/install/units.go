// Package install sets up the background check timer and the widget
// autostart entry for the current user.
package install

import (
	"fmt"
	"time"
)

// Unit and entry file names under the user configuration directory.
const (
	CheckServiceName = "goodtimes-check.service"
	CheckTimerName   = "goodtimes-check.timer"
	WidgetEntryName  = "goodtimes-widget.desktop"
)

// checkServiceUnit renders the oneshot service executed by the timer.
func checkServiceUnit(execPath string) string {
	return fmt.Sprintf(`[Unit]
Description=goodtimes working time check

[Service]
Type=oneshot
ExecStart=%s check
`, execPath)
}

// checkTimerUnit renders the timer driving the periodic check. The interval
// is written in whole seconds, the one spelling systemd cannot misread.
func checkTimerUnit(interval time.Duration) string {
	secs := int(interval.Seconds())
	return fmt.Sprintf(`[Unit]
Description=Periodic goodtimes working time check

[Timer]
OnStartupSec=%ds
OnUnitActiveSec=%ds
AccuracySec=30s

[Install]
WantedBy=timers.target
`, secs, secs)
}

// widgetDesktopEntry renders the XDG autostart entry that launches the live
// status widget with the desktop session.
func widgetDesktopEntry(execPath string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=goodTimes
Comment=Live working time status
Exec=%s widget
Terminal=true
X-GNOME-Autostart-enabled=true
`, execPath)
}
