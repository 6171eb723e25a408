package wipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledPassthroughWhenUnlimited(t *testing.T) {
	target := &fakeTarget{data: make([]byte, 16)}
	assert.Same(t, target, Throttled(target, 0))
	assert.Same(t, target, Throttled(target, -5))
}

func TestThrottledCapsWriteRate(t *testing.T) {
	target := &fakeTarget{data: make([]byte, 1<<20)}
	// 1 MB/s cap: two back-to-back 512 KiB writes must take at least
	// roughly half a second for the second one.
	w := Throttled(target, 1)

	start := time.Now()
	_, err := w.Write(make([]byte, 512*1024))
	require.NoError(t, err)
	_, err = w.Write(make([]byte, 512*1024))
	require.NoError(t, err)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.Equal(t, 2, target.writes)
}
