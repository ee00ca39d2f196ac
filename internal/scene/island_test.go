package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"island/internal/sim"
)

func TestCube(t *testing.T) {
	m := Cube("box", [3]float32{1, 2, 3}, [3]float32{0.5, 2, 0.25}, Palette.Bush)

	assert.Equal(t, "box", m.Name)
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Normals, 24*3)
	assert.Len(t, m.Colors, 24*3)
	require.Len(t, m.Indices, 36)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}

	min, max := m.Bounds()
	assert.Equal(t, [3]float32{0.5, 2, 2.75}, min)
	assert.Equal(t, [3]float32{1.5, 4, 3.25}, max)

	for i := 0; i < len(m.Colors); i += 3 {
		assert.Equal(t, Palette.Bush, RGB{R: m.Colors[i], G: m.Colors[i+1], B: m.Colors[i+2]})
	}
}

func TestCube_NormalsPointOutward(t *testing.T) {
	m := Cube("unit", [3]float32{0, 0, 0}, [3]float32{1, 2, 1}, Palette.Wheel)
	center := [3]float32{0, 1, 0}

	for v := 0; v < m.VertexCount(); v++ {
		var dot float32
		for k := 0; k < 3; k++ {
			dot += (m.Positions[v*3+k] - center[k]) * m.Normals[v*3+k]
		}
		assert.Greater(t, dot, float32(0), "vertex %d", v)
	}
}

func TestBuild_Obstacles(t *testing.T) {
	l := Build()
	require.NoError(t, sim.ValidateObstacles(l.Obstacles))

	counts := map[sim.Category]int{}
	for _, o := range l.Obstacles {
		counts[o.Category()]++
	}
	assert.Equal(t, 4, counts[sim.CategoryBuilding])
	assert.Equal(t, 8, counts[sim.CategoryBush])
	assert.Equal(t, 4, counts[sim.CategoryTree])

	first := l.Obstacles[0].Footprint()
	assert.Equal(t, sim.Vec2{X: -4, Z: -3}, first.Center)
	assert.InDelta(t, 0.64, first.Radius, 1e-6)

	last := l.Obstacles[len(l.Obstacles)-1].Footprint()
	assert.Equal(t, sim.Vec2{X: 0, Z: 5}, last.Center)
	assert.Equal(t, sim.TreeRadius, last.Radius)
}

func TestBuild_Meshes(t *testing.T) {
	l := Build()

	// 8 terraces + top, 4 buildings, 8 bushes of 5 blocks, 4 trunks with 3 canopy layers.
	assert.Len(t, l.Static, 9+4+8*5+4*(1+3))
	assert.Len(t, l.Vehicle, 6)

	names := map[string]bool{}
	for _, m := range append(append([]Mesh{}, l.Static...), l.Vehicle...) {
		assert.False(t, names[m.Name], "duplicate mesh %q", m.Name)
		names[m.Name] = true
		assert.Equal(t, 24, m.VertexCount(), m.Name)
	}

	_, topMax := l.Static[8].Bounds()
	assert.InDelta(t, SurfaceY, topMax[1], 1e-6)
}

func TestBuild_VehicleStartsClear(t *testing.T) {
	l := Build()
	v := sim.NewVehicle()
	assert.True(t, sim.Admissible(v.Position.Planar(), v.Radius, l.Obstacles, sim.IslandEdge))
}

func TestRGB_Mul(t *testing.T) {
	c := RGB{R: 0.5, G: 0.8, B: 0}.Mul(1.5)
	assert.InDelta(t, 0.75, c.R, 1e-6)
	assert.Equal(t, float32(1), c.G)
	assert.Equal(t, float32(0), c.B)
}

func TestFootprintLoop(t *testing.T) {
	c := sim.Circle{Center: sim.Vec2{X: 2, Z: -1}, Radius: 0.5}
	loop := FootprintLoop(c, 0.7)
	require.Len(t, loop, FootprintSegments*3)

	for i := 0; i < len(loop); i += 3 {
		dx := float64(loop[i]) - 2
		dz := float64(loop[i+2]) + 1
		assert.InDelta(t, 0.5, math.Hypot(dx, dz), 1e-5)
		assert.Equal(t, float32(0.7), loop[i+1])
	}

	all := FootprintLoops(Build().Obstacles, SurfaceY)
	assert.Len(t, all, 16*FootprintSegments*3)
}
