package sfx

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"island/internal/sim"
)

func frames(t *testing.T, buf []byte) [][2]float32 {
	t.Helper()
	require.Zero(t, len(buf)%FrameBytes)
	out := make([][2]float32, len(buf)/FrameBytes)
	for i := range out {
		out[i][0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*FrameBytes:]))
		out[i][1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*FrameBytes+4:]))
	}
	return out
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		cue     Cue
		cat     sim.Category
		seconds float64
	}{
		{"bump building", CueBump, sim.CategoryBuilding, 0.12},
		{"bump bush", CueBump, sim.CategoryBush, 0.12},
		{"thud", CueThud, sim.CategoryTree, 0.22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Generate(tt.cue, tt.cat)
			f := frames(t, buf)
			assert.Len(t, f, int(tt.seconds*SampleRate))

			var peak float32
			for _, fr := range f {
				assert.Equal(t, fr[0], fr[1])
				require.False(t, math.IsNaN(float64(fr[0])))
				assert.LessOrEqual(t, math.Abs(float64(fr[0])), 1.0)
				if a := float32(math.Abs(float64(fr[0]))); a > peak {
					peak = a
				}
			}
			assert.Greater(t, peak, float32(0.05))
		})
	}
	assert.Nil(t, Generate(Cue(99), sim.CategoryTree))
}

func TestBump_PitchDiffersByCategory(t *testing.T) {
	assert.NotEqual(t, Bump(sim.CategoryBuilding), Bump(sim.CategoryBush))
	assert.Equal(t, Bump(sim.CategoryTree), Bump(sim.CategoryTree))
}

func TestGainForSpeed(t *testing.T) {
	assert.InDelta(t, 0.35, GainForSpeed(0, 0.15), 1e-12)
	assert.InDelta(t, 1.0, GainForSpeed(0.15, 0.15), 1e-12)
	assert.InDelta(t, 1.0, GainForSpeed(-0.5, 0.15), 1e-12)
	assert.Equal(t, 0.0, GainForSpeed(0.1, 0))
}

func TestReader(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	got, err := io.ReadAll(NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	r := NewReader(nil)
	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "bump", CueBump.String())
	assert.Equal(t, "thud", CueThud.String())
	assert.Equal(t, "unknown", Cue(7).String())
}
