//go:build windows

package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const ioctlDiskGetDriveGeometryEx = 0x000700a0

// diskGeometryEx mirrors DISK_GEOMETRY_EX from winioctl.h.
type diskGeometryEx struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
	DiskSize          int64
	Data              [1]byte
}

// IsDevicePath reports whether path names a raw Windows device, e.g.
// \\.\PhysicalDrive0 or \\.\C:.
func IsDevicePath(path string) bool {
	if !strings.HasPrefix(path, `\\.\`) {
		return false
	}
	rest := strings.TrimPrefix(path, `\\.\`)
	return strings.HasPrefix(rest, "PhysicalDrive") ||
		(len(rest) == 2 && rest[1] == ':')
}

func openTarget(path string) (Target, error) {
	if IsDevicePath(path) {
		return openDevice(path)
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, classifyStatError(path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, classifyStatError(path, err)
	}

	return &target{f: f, path: path, kind: KindFile, size: uint64(st.Size())}, nil
}

func openDevice(path string) (Target, error) {
	namep, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid device path %s: %w", path, err)
	}

	h, err := windows.CreateFile(
		namep,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		switch {
		case errors.Is(err, windows.ERROR_FILE_NOT_FOUND), errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case errors.Is(err, windows.ERROR_ACCESS_DENIED):
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to open device %s: %w", path, err)
	}

	geometry, err := queryGeometry(h)
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("%w: %s: %v", ErrSizeUnavailable, path, err)
	}

	return &target{
		f:      os.NewFile(uintptr(h), path),
		path:   path,
		kind:   KindBlock,
		size:   uint64(geometry.DiskSize),
		sector: int(geometry.BytesPerSector),
	}, nil
}

func queryGeometry(h windows.Handle) (*diskGeometryEx, error) {
	var geometry diskGeometryEx
	var returned uint32
	err := windows.DeviceIoControl(
		h,
		ioctlDiskGetDriveGeometryEx,
		nil,
		0,
		(*byte)(unsafe.Pointer(&geometry)),
		uint32(unsafe.Sizeof(geometry)),
		&returned,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if geometry.DiskSize <= 0 {
		return nil, fmt.Errorf("device reported non-positive size %d", geometry.DiskSize)
	}
	return &geometry, nil
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
