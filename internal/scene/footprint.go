package scene

import (
	"math"

	"island/internal/sim"
)

// FootprintSegments is the number of vertices in one footprint loop.
const FootprintSegments = 32

// FootprintLoop returns the positions of a closed line loop tracing c at
// height y, FootprintSegments vertices of 3 floats each.
func FootprintLoop(c sim.Circle, y float32) []float32 {
	out := make([]float32, 0, FootprintSegments*3)
	for i := 0; i < FootprintSegments; i++ {
		a := 2 * math.Pi * float64(i) / FootprintSegments
		sin, cos := math.Sincos(a)
		out = append(out,
			float32(c.Center.X+cos*c.Radius),
			y,
			float32(c.Center.Z+sin*c.Radius),
		)
	}
	return out
}

// FootprintLoops concatenates the loops of every obstacle.
func FootprintLoops(obstacles []sim.Obstacle, y float32) []float32 {
	out := make([]float32, 0, len(obstacles)*FootprintSegments*3)
	for _, o := range obstacles {
		out = append(out, FootprintLoop(o.Footprint(), y)...)
	}
	return out
}
