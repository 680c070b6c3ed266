package install

import (
	"context"
	"fmt"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
)

// dbusManager drives the per-user systemd instance over the session bus.
type dbusManager struct {
	conn *sddbus.Conn
}

// connectUserManager opens the D-Bus connection to the calling user's
// systemd instance.
func connectUserManager(ctx context.Context) (UnitManager, error) {
	conn, err := sddbus.NewUserConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening user bus: %w", err)
	}
	return &dbusManager{conn: conn}, nil
}

func (m *dbusManager) Reload(ctx context.Context) error {
	return m.conn.ReloadContext(ctx)
}

func (m *dbusManager) EnableAndStart(ctx context.Context, unit string) error {
	if _, _, err := m.conn.EnableUnitFilesContext(ctx, []string{unit}, false, true); err != nil {
		return fmt.Errorf("enabling unit: %w", err)
	}

	done := make(chan string, 1)
	if _, err := m.conn.StartUnitContext(ctx, unit, "replace", done); err != nil {
		return fmt.Errorf("starting unit: %w", err)
	}
	select {
	case result := <-done:
		if result != "done" {
			return fmt.Errorf("starting unit: job finished as %q", result)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (m *dbusManager) StopAndDisable(ctx context.Context, unit string) error {
	done := make(chan string, 1)
	if _, err := m.conn.StopUnitContext(ctx, unit, "replace", done); err != nil {
		return fmt.Errorf("stopping unit: %w", err)
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if _, err := m.conn.DisableUnitFilesContext(ctx, []string{unit}, false); err != nil {
		return fmt.Errorf("disabling unit: %w", err)
	}
	return nil
}

func (m *dbusManager) Close() {
	m.conn.Close()
}
