package wipe

import (
	"time"

	"securewipe/internal/device"
)

// throttledTarget caps the write rate over a device.Target. A zero or
// negative ceiling disables throttling entirely.
type throttledTarget struct {
	device.Target
	maxSpeedMBps float64
	lastWrite    time.Time
}

// Throttled wraps t so writes never exceed maxSpeedMBps on average.
func Throttled(t device.Target, maxSpeedMBps float64) device.Target {
	if maxSpeedMBps <= 0 {
		return t
	}
	return &throttledTarget{Target: t, maxSpeedMBps: maxSpeedMBps, lastWrite: time.Now()}
}

func (tt *throttledTarget) Write(p []byte) (int, error) {
	bytesPerSec := tt.maxSpeedMBps * 1024 * 1024
	expected := time.Duration(float64(len(p)) / bytesPerSec * float64(time.Second))
	if elapsed := time.Since(tt.lastWrite); elapsed < expected {
		time.Sleep(expected - elapsed)
	}

	n, err := tt.Target.Write(p)
	tt.lastWrite = time.Now()
	return n, err
}
