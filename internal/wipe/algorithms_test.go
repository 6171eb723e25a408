package wipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"zero", "random", "dod5220", "gutmann", "custom"} {
		a, err := ParseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, Algorithm(name), a)
	}

	_, err := ParseAlgorithm("shred")
	assert.Error(t, err)
}

func TestPassesForCounts(t *testing.T) {
	tests := []struct {
		algo   Algorithm
		custom int
		want   int
	}{
		{AlgoZero, 0, 1},
		{AlgoRandom, 0, 1},
		{AlgoDod5220, 0, 3},
		{AlgoGutmann, 0, 35},
		{AlgoCustom, 1, 1},
		{AlgoCustom, 7, 7},
	}

	for _, tt := range tests {
		specs, err := PassesFor(tt.algo, tt.custom)
		require.NoError(t, err, "algo %s", tt.algo)
		assert.Len(t, specs, tt.want, "algo %s", tt.algo)

		for i, spec := range specs {
			assert.Equal(t, i+1, spec.Pass)
			assert.Equal(t, tt.want, spec.TotalPasses)
		}
	}
}

func TestPassesForCustomRequiresAtLeastOnePass(t *testing.T) {
	_, err := PassesFor(AlgoCustom, 0)
	assert.Error(t, err)

	_, err = PassesFor(AlgoCustom, -3)
	assert.Error(t, err)
}

func TestDod5220Schedule(t *testing.T) {
	specs, err := PassesFor(AlgoDod5220, 0)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, PatternFixed, specs[0].Pattern.Kind)
	assert.Equal(t, byte(0x00), specs[0].Pattern.Byte)
	assert.Equal(t, PatternFixed, specs[1].Pattern.Kind)
	assert.Equal(t, byte(0xFF), specs[1].Pattern.Byte)
	assert.Equal(t, PatternRandom, specs[2].Pattern.Kind)
}

func TestGutmannSchedule(t *testing.T) {
	specs, err := PassesFor(AlgoGutmann, 0)
	require.NoError(t, err)
	require.Len(t, specs, 35)

	// Four random passes on either side of the deterministic block.
	for _, i := range []int{0, 1, 2, 3, 31, 32, 33, 34} {
		assert.Equal(t, PatternRandom, specs[i].Pattern.Kind, "pass %d", i+1)
	}
	for i := 4; i < 31; i++ {
		assert.NotEqual(t, PatternRandom, specs[i].Pattern.Kind, "pass %d", i+1)
	}

	assert.Equal(t, byte(0x55), specs[4].Pattern.Byte)
	assert.Equal(t, []byte{0x92, 0x49, 0x24}, specs[6].Pattern.Seq)
	assert.Equal(t, []byte{0xDB, 0x6D, 0xB6}, specs[30].Pattern.Seq)
}

func TestPatternName(t *testing.T) {
	assert.Equal(t, "0x00", fixed(0x00).Name())
	assert.Equal(t, "0xFF", fixed(0xFF).Name())
	assert.Equal(t, "0x924924", seq(0x92, 0x49, 0x24).Name())
	assert.Equal(t, "random", random().Name())
}

func TestPatternFill(t *testing.T) {
	buf := make([]byte, 10)

	require.NoError(t, fixed(0xAB).Fill(buf, nil))
	for _, b := range buf {
		assert.Equal(t, byte(0xAB), b)
	}

	require.NoError(t, seq(0x01, 0x02, 0x03).Fill(buf, nil))
	assert.Equal(t, []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}, buf)

	src := &seqSource{}
	require.NoError(t, random().Fill(buf, src))
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, buf)
}

func TestCryptoSourceFillsWholeBuffer(t *testing.T) {
	buf := make([]byte, 4096)
	require.NoError(t, CryptoSource{}.Fill(buf))

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero, "4096 random bytes should not all be zero")
}

// seqSource produces a deterministic counting byte stream.
type seqSource struct {
	next byte
}

func (s *seqSource) Fill(buf []byte) error {
	for i := range buf {
		buf[i] = s.next
		s.next++
	}
	return nil
}
