package wipe

import "time"

// IntegrityMode controls when written data is forced durable.
type IntegrityMode int

const (
	// Synchronous forces every buffer write to disk before the next one
	// begins.
	Synchronous IntegrityMode = iota
	// Fast lets the OS buffer writes and issues a single sync at each pass
	// boundary.
	Fast
)

func (m IntegrityMode) String() string {
	if m == Fast {
		return "fast"
	}
	return "synchronous"
}

// Result summarizes a completed session.
type Result struct {
	Passes       int
	BytesWritten uint64
	Duration     time.Duration
	AvgMBps      float64
}
