// Package drives enumerates wipe candidates on the host.
package drives

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DriveInfo describes one enumerable device or volume.
type DriveInfo struct {
	Path        string   `json:"path"`
	DriveType   string   `json:"drive_type"`
	SizeBytes   *uint64  `json:"size_bytes"`
	SizeGB      *float64 `json:"size_gb"`
	Description string   `json:"description"`
}

// ListEvent is the machine-readable form of the enumeration result.
type ListEvent struct {
	Type   string      `json:"type"`
	Drives []DriveInfo `json:"drives"`
}

// List returns the drives visible on this platform. Enumeration is best
// effort; a platform without support returns an empty list, not an error.
func List() ([]DriveInfo, error) {
	return listDrives()
}

// NewListEvent wraps drives for the JSON event stream.
func NewListEvent(drives []DriveInfo) ListEvent {
	return ListEvent{Type: "drive_list", Drives: drives}
}

// PrintHuman renders the enumeration grouped by device type.
func PrintHuman(w io.Writer, drives []DriveInfo) {
	if len(drives) == 0 {
		fmt.Fprintln(w, "No drives found or platform not supported for drive enumeration.")
		return
	}

	fmt.Fprintln(w, "Available drives and partitions for secure wiping:")
	fmt.Fprintln(w)

	groups := []struct {
		driveType string
		heading   string
	}{
		{"disk", "Physical Drives:"},
		{"part", "Partitions:"},
		{"volume", "Volumes:"},
		{"", "Other Devices:"},
	}

	for _, g := range groups {
		var matched []DriveInfo
		for _, d := range drives {
			known := d.DriveType == "disk" || d.DriveType == "part" || d.DriveType == "volume"
			if d.DriveType == g.driveType || (g.driveType == "" && !known) {
				matched = append(matched, d)
			}
		}
		if len(matched) == 0 {
			continue
		}
		fmt.Fprintln(w, g.heading)
		for _, d := range matched {
			fmt.Fprintf(w, "  %s\n", d.Description)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "WARNING: Device wiping is IRREVERSIBLE!")
	fmt.Fprintln(w, "Always verify the target device before proceeding.")
	fmt.Fprintln(w, "Use demo mode for safe testing: --demo --demo-size 10")
}

// parseSizeToGB converts lsblk's human-readable size ("500G", "1.8T") to
// gigabytes.
func parseSizeToGB(s string) *float64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	unit := 1e-9 // bare number is bytes
	switch {
	case strings.HasSuffix(s, "TB") || strings.HasSuffix(s, "T"):
		s = strings.TrimSuffix(strings.TrimSuffix(s, "TB"), "T")
		unit = 1000.0
	case strings.HasSuffix(s, "GB") || strings.HasSuffix(s, "G"):
		s = strings.TrimSuffix(strings.TrimSuffix(s, "GB"), "G")
		unit = 1.0
	case strings.HasSuffix(s, "MB") || strings.HasSuffix(s, "M"):
		s = strings.TrimSuffix(strings.TrimSuffix(s, "MB"), "M")
		unit = 0.001
	case strings.HasSuffix(s, "KB") || strings.HasSuffix(s, "K"):
		s = strings.TrimSuffix(strings.TrimSuffix(s, "KB"), "K")
		unit = 0.000001
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	gb := n * unit
	return &gb
}
