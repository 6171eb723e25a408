package reporting

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securewipe/internal/device"
	"securewipe/internal/wipe"
)

type stubTarget struct{}

func (stubTarget) Path() string                { return "/dev/sdz1" }
func (stubTarget) Kind() device.Kind           { return device.KindBlock }
func (stubTarget) Size() uint64                { return 1 << 30 }
func (stubTarget) SectorSize() int             { return 512 }
func (stubTarget) Write(p []byte) (int, error) { return len(p), nil }
func (stubTarget) Rewind() error               { return nil }
func (stubTarget) Sync() error                 { return nil }
func (stubTarget) Close() error                { return nil }

func TestReportSaveSuccess(t *testing.T) {
	r := New("1.0.0", stubTarget{}, "dod5220", 3, 1024)
	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, "started", r.Status)

	r.Succeed(&wipe.Result{
		Passes:       3,
		BytesWritten: 3 << 30,
		Duration:     90 * time.Second,
		AvgMBps:      34.1,
	})

	dir := t.TempDir()
	path, err := r.Save(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, r.RunID, loaded.RunID)
	assert.Equal(t, "success", loaded.Status)
	assert.Equal(t, 3, loaded.Passes)
	assert.Equal(t, "/dev/sdz1", loaded.Target)
	assert.Equal(t, "block_device", loaded.TargetKind)
	assert.Equal(t, uint64(3<<30), loaded.BytesWritten)
	assert.Empty(t, loaded.Error)
}

func TestReportSaveFailure(t *testing.T) {
	r := New("1.0.0", stubTarget{}, "zero", 1, 1024)
	r.Fail(assert.AnError)

	path, err := r.Save(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "failed", loaded.Status)
	assert.Equal(t, assert.AnError.Error(), loaded.Error)
}

func TestReportNoOpSessionRecordsZeroPasses(t *testing.T) {
	r := New("1.0.0", stubTarget{}, "dod5220", 3, 1024)
	r.Succeed(&wipe.Result{})

	assert.Equal(t, "success", r.Status)
	assert.Equal(t, 0, r.Passes)
	assert.Equal(t, uint64(0), r.BytesWritten)
}

func TestReportUniqueRunIDs(t *testing.T) {
	a := New("1.0.0", stubTarget{}, "zero", 1, 1024)
	b := New("1.0.0", stubTarget{}, "zero", 1, 1024)
	assert.NotEqual(t, a.RunID, b.RunID)
}
