// Package security holds the pre-wipe safety checks.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"securewipe/internal/config"
)

// CheckTarget refuses paths the configuration marks as protected. The check
// is on the cleaned absolute path so "/etc/" and "/etc" match.
func CheckTarget(cfg *config.Config, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.Clean(abs)

	for _, protected := range cfg.Security.ProtectedPaths {
		if abs == filepath.Clean(protected) {
			return fmt.Errorf("refusing to wipe protected path: %s", abs)
		}
	}
	return nil
}

// HasElevatedPrivileges reports whether the process can expect raw device
// access. On Windows the only reliable probe is attempting to open a
// physical drive handle.
func HasElevatedPrivileges() bool {
	if runtime.GOOS == "windows" {
		f, err := os.OpenFile(`\\.\PHYSICALDRIVE0`, os.O_RDONLY, 0)
		if err != nil {
			return !strings.Contains(err.Error(), "Access is denied")
		}
		f.Close()
		return true
	}
	return os.Geteuid() == 0
}
