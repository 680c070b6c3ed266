package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// UnitManager is the slice of the systemd user manager the installer needs.
// The production implementation talks over D-Bus; tests substitute a fake.
type UnitManager interface {
	Reload(ctx context.Context) error
	EnableAndStart(ctx context.Context, unit string) error
	StopAndDisable(ctx context.Context, unit string) error
	Close()
}

// Installer writes unit and autostart files for the invoking user and drives
// the systemd user manager to pick them up.
type Installer struct {
	// ExecPath is the absolute goodtimes binary path written into units.
	ExecPath string
	// Interval is the period of the check timer.
	Interval time.Duration
	// ConfigDir is the base user configuration directory, normally
	// os.UserConfigDir. Tests point it at a scratch directory.
	ConfigDir string
	// Connect opens a UnitManager. Left nil, the D-Bus user connection is
	// used.
	Connect func(ctx context.Context) (UnitManager, error)

	Log zerolog.Logger
}

// NewInstaller builds an installer for the current user and binary.
func NewInstaller(interval time.Duration, log zerolog.Logger) (*Installer, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving binary path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("resolving binary path: %w", err)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving user config dir: %w", err)
	}
	return &Installer{
		ExecPath:  execPath,
		Interval:  interval,
		ConfigDir: configDir,
		Log:       log,
	}, nil
}

func (in *Installer) unitDir() string {
	return filepath.Join(in.ConfigDir, "systemd", "user")
}

func (in *Installer) autostartDir() string {
	return filepath.Join(in.ConfigDir, "autostart")
}

func (in *Installer) connect(ctx context.Context) (UnitManager, error) {
	if in.Connect != nil {
		return in.Connect(ctx)
	}
	return connectUserManager(ctx)
}

// InstallCheck writes the check service and timer units, reloads the user
// manager and enables and starts the timer.
func (in *Installer) InstallCheck(ctx context.Context) error {
	units := map[string]string{
		CheckServiceName: checkServiceUnit(in.ExecPath),
		CheckTimerName:   checkTimerUnit(in.Interval),
	}
	if err := os.MkdirAll(in.unitDir(), 0o755); err != nil {
		return fmt.Errorf("creating unit dir: %w", err)
	}
	for name, content := range units {
		path := filepath.Join(in.unitDir(), name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		in.Log.Debug().Str("unit", path).Msg("unit file written")
	}

	mgr, err := in.connect(ctx)
	if err != nil {
		return fmt.Errorf("connecting to systemd user manager: %w", err)
	}
	defer mgr.Close()

	if err := mgr.Reload(ctx); err != nil {
		return fmt.Errorf("reloading units: %w", err)
	}
	if err := mgr.EnableAndStart(ctx, CheckTimerName); err != nil {
		return fmt.Errorf("enabling %s: %w", CheckTimerName, err)
	}
	in.Log.Info().Dur("interval", in.Interval).Msg("check timer installed")
	return nil
}

// UninstallCheck stops and disables the timer and removes both unit files.
// A check that was never installed is not an error.
func (in *Installer) UninstallCheck(ctx context.Context) error {
	mgr, err := in.connect(ctx)
	if err != nil {
		return fmt.Errorf("connecting to systemd user manager: %w", err)
	}
	defer mgr.Close()

	if err := mgr.StopAndDisable(ctx, CheckTimerName); err != nil {
		// The unit may be gone already; removal should still proceed.
		in.Log.Warn().Err(err).Msg("stopping check timer failed")
	}

	for _, name := range []string{CheckTimerName, CheckServiceName} {
		if err := removeIfPresent(filepath.Join(in.unitDir(), name)); err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}

	if err := mgr.Reload(ctx); err != nil {
		return fmt.Errorf("reloading units: %w", err)
	}
	in.Log.Info().Msg("check timer uninstalled")
	return nil
}

// InstallWidget writes the autostart entry that launches the widget with the
// desktop session.
func (in *Installer) InstallWidget() error {
	if err := os.MkdirAll(in.autostartDir(), 0o755); err != nil {
		return fmt.Errorf("creating autostart dir: %w", err)
	}
	path := filepath.Join(in.autostartDir(), WidgetEntryName)
	if err := os.WriteFile(path, []byte(widgetDesktopEntry(in.ExecPath)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", WidgetEntryName, err)
	}
	in.Log.Info().Str("entry", path).Msg("widget autostart installed")
	return nil
}

// UninstallWidget removes the autostart entry. Absence is not an error.
func (in *Installer) UninstallWidget() error {
	if err := removeIfPresent(filepath.Join(in.autostartDir(), WidgetEntryName)); err != nil {
		return fmt.Errorf("removing %s: %w", WidgetEntryName, err)
	}
	in.Log.Info().Msg("widget autostart uninstalled")
	return nil
}

func removeIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
