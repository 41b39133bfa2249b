// Package housekeeping owns process bootstrap chores: resolving the
// platform data directories, first-run setup, migrating saves from the old
// in-checkout location, cleaning auto-update residue, and log setup and
// pruning.
package housekeeping

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const appDirName = "wildclans"

// legacySaveDir is where saves lived before they moved to the user config
// dir: next to the executable, which broke on read-only installs.
const legacySaveDir = "saves"

// UpdateMarker is dropped by the auto-updater just before it restarts the
// game; finding it at startup means an update finished last run.
const UpdateMarker = "auto-updated"

// DataDir returns the per-user root for everything the game writes.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// SaveDir returns the clan save directory under the data dir.
func SaveDir() (string, error) {
	root, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "saves"), nil
}

// LogDir returns the log directory under the data dir.
func LogDir() (string, error) {
	root, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "logs"), nil
}

// SetupDataDir creates the save and log directories if they are missing.
// Safe to call on every start.
func SetupDataDir() error {
	for _, f := range []func() (string, error){SaveDir, LogDir} {
		dir, err := f()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// MigrateLegacySaves moves saves from the old in-checkout directory into
// the user data dir. It only runs when the legacy directory exists and the
// new one is still empty, so it cannot clobber anything.
func MigrateLegacySaves() error {
	if _, err := os.Stat(legacySaveDir); err != nil {
		return nil
	}
	dest, err := SaveDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dest)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	old, err := os.ReadDir(legacySaveDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, e := range old {
		from := filepath.Join(legacySaveDir, e.Name())
		to := filepath.Join(dest, e.Name())
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("migrate %s: %w", e.Name(), err)
		}
	}
	zap.L().Info("migrated legacy saves", zap.String("to", dest), zap.Int("entries", len(old)))
	return nil
}

// CleanupUpdateResidue removes the auto-update marker and the downloaded
// archive directory left behind by a completed self-update.
func CleanupUpdateResidue() {
	if _, err := os.Stat(UpdateMarker); err != nil {
		return
	}
	os.Remove(UpdateMarker)
	os.RemoveAll("Downloads")
	zap.L().Info("auto-update complete, residue removed")
}
