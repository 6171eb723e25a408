package demo

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securewipe/internal/progress"
)

type recordEmitter struct {
	mu     sync.Mutex
	events []any
}

func (e *recordEmitter) Emit(event any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func TestCreateDemoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.img")
	rec := &recordEmitter{}

	require.NoError(t, CreateDemoFile(path, 1, rec, 100*time.Millisecond))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 1024*1024)
	assert.True(t, bytes.HasPrefix(data, []byte("DEMO DATA - This will be securely wiped! ")))

	require.NotEmpty(t, rec.events)
	_, ok := rec.events[0].(progress.InfoEvent)
	assert.True(t, ok, "first event is the creation notice")

	created, ok := rec.events[len(rec.events)-1].(progress.DemoFileCreatedEvent)
	require.True(t, ok, "last event is demo_file_created")
	assert.Equal(t, path, created.Path)
	assert.Equal(t, uint64(1), created.SizeMB)
}

func TestCreateDemoFileZeroSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.img")
	rec := &recordEmitter{}

	require.NoError(t, CreateDemoFile(path, 0, rec, time.Millisecond))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Size())
}

func TestCreateDemoFileBadPath(t *testing.T) {
	err := CreateDemoFile(filepath.Join(t.TempDir(), "missing", "demo.img"), 1, &recordEmitter{}, time.Millisecond)
	assert.Error(t, err)
}
