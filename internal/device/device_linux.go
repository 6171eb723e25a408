//go:build linux

package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

func openTarget(path string) (Target, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, classifyStatError(path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	kind := KindFile
	if st.Mode()&os.ModeDevice != 0 {
		kind = KindBlock
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, classifyStatError(path, err)
	}

	t := &target{f: f, path: path, kind: kind}

	if kind == KindBlock {
		size, err := blockDeviceSize(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrSizeUnavailable, path, err)
		}
		t.size = size
		if sector, err := blockSectorSize(f); err == nil && sector > 0 {
			t.sector = sector
		}
	} else {
		t.size = uint64(st.Size())
	}

	return t, nil
}

// blockDeviceSize queries the device's addressable capacity in bytes.
func blockDeviceSize(f *os.File) (uint64, error) {
	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return 0, errno
	}
	return size, nil
}

// blockSectorSize queries the device's logical sector size.
func blockSectorSize(f *os.File) (int, error) {
	var sector int32
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), unix.BLKSSZGET, uintptr(unsafe.Pointer(&sector)))
	if errno != 0 {
		return 0, errno
	}
	return int(sector), nil
}

func classifyStatError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrPermission, path)
	}
	return fmt.Errorf("failed to open target %s: %w", path, err)
}
