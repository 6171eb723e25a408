//go:build !linux && !windows

package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

func openTarget(path string) (Target, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to open target %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if st.Mode()&os.ModeDevice != 0 {
		// No capacity query on this platform, so device writes cannot be
		// bounded safely.
		return nil, fmt.Errorf("%w: block device wiping is not supported on this platform", ErrSizeUnavailable)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to open target %s: %w", path, err)
	}

	return &target{f: f, path: path, kind: KindFile, size: uint64(st.Size())}, nil
}
