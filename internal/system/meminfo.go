// Package system exposes the host facts the wipe engine needs.
package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// AvailableMemoryKB reports memory currently available for allocation, in
// kilobytes. Buffer auto-sizing falls back to a conservative default when
// this fails.
func AvailableMemoryKB() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to query system memory: %w", err)
	}
	return vm.Available / 1024, nil
}
