//go:build linux

package drives

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

type lsblkDevice struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Size     string        `json:"size"`
	Children []lsblkDevice `json:"children"`
}

type lsblkOutput struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

func listDrives() ([]DriveInfo, error) {
	drives, err := lsblkDrives()
	if err != nil {
		// lsblk may be missing in minimal environments.
		return commonDevices(), nil
	}
	return drives, nil
}

func lsblkDrives() ([]DriveInfo, error) {
	out, err := exec.Command("lsblk", "-J", "-o", "NAME,TYPE,SIZE,MOUNTPOINT").Output()
	if err != nil {
		return nil, fmt.Errorf("lsblk failed: %w", err)
	}

	var parsed lsblkOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse lsblk output: %w", err)
	}

	var drives []DriveInfo
	for _, dev := range parsed.BlockDevices {
		drives = appendLsblkTree(drives, dev)
	}
	return drives, nil
}

// appendLsblkTree flattens a device and all of its descendants. Children
// can nest arbitrarily deep (partition under device-mapper under disk).
func appendLsblkTree(drives []DriveInfo, dev lsblkDevice) []DriveInfo {
	drives = append(drives, driveFromLsblk(dev))
	for _, child := range dev.Children {
		drives = appendLsblkTree(drives, child)
	}
	return drives
}

func driveFromLsblk(dev lsblkDevice) DriveInfo {
	path := "/dev/" + dev.Name
	size := dev.Size
	if size == "" {
		size = "Unknown"
	}
	return DriveInfo{
		Path:        path,
		DriveType:   dev.Type,
		SizeGB:      parseSizeToGB(dev.Size),
		Description: fmt.Sprintf("%s - %s %s", path, dev.Type, size),
	}
}

func commonDevices() []DriveInfo {
	return []DriveInfo{
		{Path: "/dev/sda", DriveType: "disk", Description: "/dev/sda - SATA disk (example)"},
		{Path: "/dev/sda1", DriveType: "part", Description: "/dev/sda1 - SATA partition (example)"},
		{Path: "/dev/nvme0n1", DriveType: "disk", Description: "/dev/nvme0n1 - NVMe disk (example)"},
		{Path: "/dev/nvme0n1p1", DriveType: "part", Description: "/dev/nvme0n1p1 - NVMe partition (example)"},
	}
}
