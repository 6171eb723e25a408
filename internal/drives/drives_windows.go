//go:build windows

package drives

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const ioctlDiskGetDriveGeometryEx = 0x000700a0

type diskGeometryEx struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
	DiskSize          int64
	Data              [1]byte
}

func listDrives() ([]DriveInfo, error) {
	drives := physicalDrives()
	drives = append(drives, logicalVolumes()...)
	return drives, nil
}

// physicalDrives probes the first ten physical drive numbers. Drives that
// cannot be opened (absent or access denied) are skipped silently.
func physicalDrives() []DriveInfo {
	var drives []DriveInfo

	for i := 0; i < 10; i++ {
		path := fmt.Sprintf(`\\.\PhysicalDrive%d`, i)
		wide, err := windows.UTF16PtrFromString(path)
		if err != nil {
			continue
		}

		h, err := windows.CreateFile(wide, windows.GENERIC_READ, 0, nil,
			windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
		if err != nil {
			continue
		}

		var geo diskGeometryEx
		var returned uint32
		err = windows.DeviceIoControl(h, ioctlDiskGetDriveGeometryEx,
			nil, 0, (*byte)(unsafe.Pointer(&geo)), uint32(unsafe.Sizeof(geo)), &returned, nil)
		windows.CloseHandle(h)

		if err == nil {
			size := uint64(geo.DiskSize)
			gb := float64(size) / 1073741824.0
			drives = append(drives, DriveInfo{
				Path:        path,
				DriveType:   "disk",
				SizeBytes:   &size,
				SizeGB:      &gb,
				Description: fmt.Sprintf("%s - Physical Drive (%.2f GB)", path, gb),
			})
		} else {
			drives = append(drives, DriveInfo{
				Path:        path,
				DriveType:   "disk",
				Description: fmt.Sprintf("%s - Physical Drive (size unknown)", path),
			})
		}
	}
	return drives
}

func logicalVolumes() []DriveInfo {
	mask, err := windows.GetLogicalDrives()
	if err != nil || mask == 0 {
		return nil
	}

	var drives []DriveInfo
	for i := 0; i < 26; i++ {
		if (mask>>uint(i))&1 == 0 {
			continue
		}
		path := fmt.Sprintf(`\\.\%c:`, 'A'+i)
		drives = append(drives, DriveInfo{
			Path:        path,
			DriveType:   "volume",
			Description: fmt.Sprintf("%s - Logical Volume", path),
		})
	}
	return drives
}
