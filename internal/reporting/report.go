// Package reporting writes a local JSON record of each wipe run.
package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"securewipe/internal/device"
	"securewipe/internal/wipe"
)

// Report is the persisted record of one wipe session.
type Report struct {
	RunID      string    `json:"run_id"`
	Version    string    `json:"version"`
	Timestamp  time.Time `json:"timestamp"`
	Target     string    `json:"target"`
	TargetKind string    `json:"target_kind"`
	Algorithm  string    `json:"algorithm"`
	Passes     int       `json:"passes"`
	BufferKB   int       `json:"buffer_kb"`
	Status     string    `json:"status"`

	BytesWritten uint64  `json:"bytes_written"`
	Duration     string  `json:"duration"`
	SpeedMBps    float64 `json:"speed_mb_s"`
	Error        string  `json:"error,omitempty"`
}

// New starts a report for the given target. Outcome fields are filled by
// Succeed or Fail before saving.
func New(version string, target device.Target, algorithm string, passes, bufferKB int) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		Version:    version,
		Timestamp:  time.Now().UTC(),
		Target:     target.Path(),
		TargetKind: target.Kind().String(),
		Algorithm:  algorithm,
		Passes:     passes,
		BufferKB:   bufferKB,
		Status:     "started",
	}
}

// Succeed records a completed session's outcome. Passes is replaced with
// the executed count, which is zero for a no-op wipe of an empty target.
func (r *Report) Succeed(res *wipe.Result) {
	r.Status = "success"
	r.Passes = res.Passes
	r.BytesWritten = res.BytesWritten
	r.Duration = res.Duration.Round(time.Millisecond).String()
	r.SpeedMBps = res.AvgMBps
}

// Fail records a terminal error.
func (r *Report) Fail(err error) {
	r.Status = "failed"
	if err != nil {
		r.Error = err.Error()
	}
}

// Save writes the report as pretty-printed JSON under dir and returns the
// file path.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("wipe_report_%s.json", r.RunID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}
