// Package demo provisions throwaway files for safely exercising the wipe
// engine.
package demo

import (
	"fmt"
	"os"
	"time"

	"securewipe/internal/progress"
	"securewipe/internal/wipe"
)

const demoPattern = "DEMO DATA - This will be securely wiped! "

const chunkSize = 64 * 1024

// CreateDemoFile writes a sizeMB file of recognizable text at path,
// emitting creation progress on the given emitter. The pattern restarts at
// every chunk boundary.
func CreateDemoFile(path string, sizeMB uint64, emitter progress.Emitter, interval time.Duration) error {
	_ = emitter.Emit(progress.Info(
		fmt.Sprintf("Creating demo file: %s (Size: %d MB)", path, sizeMB)))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create demo file %s: %w", path, err)
	}
	defer f.Close()

	buf := wipe.GetBuffer(chunkSize)
	defer wipe.PutBuffer(buf)
	for i := range buf {
		buf[i] = demoPattern[i%len(demoPattern)]
	}

	total := sizeMB * 1024 * 1024
	written := uint64(0)
	throttle := progress.NewThrottler(interval)

	for written < total {
		chunk := uint64(len(buf))
		if remaining := total - written; remaining < chunk {
			chunk = remaining
		}

		if _, err := f.Write(buf[:chunk]); err != nil {
			return fmt.Errorf("failed to write demo data at offset %d: %w", written, err)
		}
		written += chunk

		if throttle.Allow(time.Now()) {
			percent := 100 * float64(written) / float64(total)
			_ = emitter.Emit(progress.DemoFileCreating(written, total, percent))
		}
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync demo file: %w", err)
	}

	_ = emitter.Emit(progress.DemoFileCreated(path, sizeMB))
	return nil
}
