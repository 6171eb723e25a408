package wipe

import (
	"errors"

	"securewipe/internal/device"
)

// Buffer sizing bounds, in KiB. These are tunables, not contract: the
// chosen size only has to grow with available memory and stay a small
// fraction of it. Block devices get larger buffers than files because
// device I/O benefits more from long sequential bursts.
const (
	minBufferKB = 4 // floor for explicit user overrides

	blockMinKB  = 2 * 1024
	blockMaxKB  = 16 * 1024
	blockMemDiv = 100 // at most 1% of available memory

	fileMinKB  = 1024
	fileMaxKB  = 8 * 1024
	fileMemDiv = 200 // at most 0.5% of available memory

	fallbackMemoryKB = 8 * 1024 * 1024 // assume 8 GiB when the query fails
)

var ErrBufferTooLarge = errors.New("requested buffer size exceeds safe memory bounds")

// OptimalBufferSize picks the I/O buffer size in bytes. An explicit
// overrideKB is honored verbatim above the 4 KiB floor; otherwise the size
// scales with available memory and target kind.
func OptimalBufferSize(kind device.Kind, availableKB uint64, overrideKB int) (int, error) {
	if availableKB == 0 {
		availableKB = fallbackMemoryKB
	}

	if overrideKB > 0 {
		kb := overrideKB
		if kb < minBufferKB {
			kb = minBufferKB
		}
		if uint64(kb) > availableKB/4 {
			return 0, ErrBufferTooLarge
		}
		return kb * 1024, nil
	}

	var kb uint64
	if kind == device.KindBlock {
		kb = availableKB / blockMemDiv
		if kb > blockMaxKB {
			kb = blockMaxKB
		}
		if kb < blockMinKB {
			kb = blockMinKB
		}
	} else {
		kb = availableKB / fileMemDiv
		if kb > fileMaxKB {
			kb = fileMaxKB
		}
		if kb < fileMinKB {
			kb = fileMinKB
		}
	}
	return int(kb) * 1024, nil
}

// clampToTarget bounds the buffer by the target size so a session never
// allocates more than it can write. Alignment is preserved for block
// devices with a sector requirement.
func clampToTarget(size int, targetSize uint64, sector int) int {
	if targetSize == 0 || uint64(size) <= targetSize {
		return size
	}
	clamped := int(targetSize)
	if sector > 0 && clamped%sector != 0 && clamped > sector {
		clamped -= clamped % sector
	}
	return clamped
}
