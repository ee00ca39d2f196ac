package scene

import (
	"fmt"

	"island/internal/sim"
)

// Island terrace and ground levels.
const (
	terraceLayers  = 8
	terraceBase    = 12.0
	terraceHeight  = 0.4
	topSize        = 10.0
	topY           = 0.2
	groundY        = -0.4 // base of buildings and trunks
	propY          = 0.4  // base of bushes, and of the canopy above the trunk
	SurfaceY       = 0.6  // top of the sandstone slab
	bushHeight     = 0.6
	bushSpread     = 0.3
	trunkHeight    = 2.0
	canopyLayers   = 3
	canopyHeight   = 0.8
	canopyBaseSize = 1.5
	canopyShrink   = 0.4
)

// BuildingSpec places one building. Size is half-width, full height,
// half-depth, as taken by Cube.
type BuildingSpec struct {
	X, Z float32
	Size [3]float32
}

var Buildings = []BuildingSpec{
	{X: -4.0, Z: -3.0, Size: [3]float32{0.8, 2.0, 0.8}},
	{X: 4.0, Z: -3.0, Size: [3]float32{1.0, 2.5, 1.0}},
	{X: -3.5, Z: 3.5, Size: [3]float32{0.9, 1.8, 0.9}},
	{X: 3.5, Z: 3.5, Size: [3]float32{1.1, 2.2, 1.1}},
}

var BushSites = [][2]float32{
	{-2.0, -1.0}, {2.0, -1.0}, {-2.0, 1.0}, {2.0, 1.0},
	{0, -2.5}, {0, 2.5}, {-4.0, 0}, {4.0, 0},
}

var TreeSites = [][2]float32{
	{-6.0, 0}, {6.0, 0}, {0, -5.0}, {0, 5.0},
}

// Layout is everything the renderer and the simulation need from the scene.
type Layout struct {
	Static    []Mesh // drawn with the identity model matrix
	Vehicle   []Mesh // in vehicle-local space
	Obstacles []sim.Obstacle
}

// Build assembles the island, its props and the car.
func Build() Layout {
	var l Layout
	l.Static = append(l.Static, terraces()...)
	for i, b := range Buildings {
		l.addBuilding(i, b)
	}
	for i, s := range BushSites {
		l.addBush(i, s)
	}
	for i, s := range TreeSites {
		l.addTree(i, s)
	}
	l.Vehicle = car()
	return l
}

func terraces() []Mesh {
	out := make([]Mesh, 0, terraceLayers+1)
	for layer := 0; layer < terraceLayers; layer++ {
		size := float32(terraceBase * (1 - float64(layer)/terraceLayers*0.5))
		y := float32(-float64(layer) * terraceHeight)
		out = append(out, Cube(fmt.Sprintf("terrace-%d", layer),
			[3]float32{0, y, 0}, [3]float32{size, terraceHeight, size}, Palette.Earth))
	}
	out = append(out, Cube("top", [3]float32{0, topY, 0}, [3]float32{topSize, 0.4, topSize}, Palette.Sandstone))
	return out
}

func (l *Layout) addBuilding(i int, b BuildingSpec) {
	color := BuildingColors[i%len(BuildingColors)]
	pos := [3]float32{b.X, groundY + b.Size[1]/2, b.Z}
	l.Static = append(l.Static, Cube(fmt.Sprintf("building-%d", i), pos, b.Size, color))
	l.Obstacles = append(l.Obstacles, sim.Building{
		Center: sim.Vec2{X: float64(b.X), Z: float64(b.Z)},
		Size:   [3]float64{float64(b.Size[0]), float64(b.Size[1]), float64(b.Size[2])},
	})
}

// addBush lays a plus-shaped cluster of five blocks; only the centre block
// collides.
func (l *Layout) addBush(i int, s [2]float32) {
	x, z := s[0], s[1]
	y := float32(propY + bushHeight/2)
	offsets := [][2]float32{{0, 0}, {bushSpread, 0}, {-bushSpread, 0}, {0, bushSpread}, {0, -bushSpread}}
	for k, o := range offsets {
		l.Static = append(l.Static, Cube(fmt.Sprintf("bush-%d-%d", i, k),
			[3]float32{x + o[0], y, z + o[1]}, [3]float32{0.3, bushHeight, 0.3}, Palette.Bush))
	}
	l.Obstacles = append(l.Obstacles, sim.Bush{Center: sim.Vec2{X: float64(x), Z: float64(z)}})
}

func (l *Layout) addTree(i int, s [2]float32) {
	x, z := s[0], s[1]
	l.Static = append(l.Static, Cube(fmt.Sprintf("trunk-%d", i),
		[3]float32{x, groundY + trunkHeight/2, z}, [3]float32{0.3, trunkHeight, 0.3}, Palette.Trunk))

	top := float32(propY + trunkHeight)
	for layer := 0; layer < canopyLayers; layer++ {
		size := float32(canopyBaseSize - float64(layer)*canopyShrink)
		y := top + float32(layer)*canopyHeight
		l.Static = append(l.Static, Cube(fmt.Sprintf("canopy-%d-%d", i, layer),
			[3]float32{x, y, z}, [3]float32{size, canopyHeight, size}, Palette.Canopy))
	}
	l.Obstacles = append(l.Obstacles, sim.Tree{Center: sim.Vec2{X: float64(x), Z: float64(z)}})
}

// car returns the vehicle parts around the local origin; +Z is forward.
func car() []Mesh {
	const (
		wheelSize  = 0.2
		bodyHeight = 0.3
		cabHeight  = 0.3
	)
	wheelY := float32(wheelSize / 2)
	out := make([]Mesh, 0, 6)
	for i, w := range [][2]float32{{-0.4, -0.7}, {0.4, -0.7}, {-0.4, 0.7}, {0.4, 0.7}} {
		out = append(out, Cube(fmt.Sprintf("wheel-%d", i),
			[3]float32{w[0], wheelY, w[1]}, [3]float32{wheelSize, wheelSize, wheelSize}, Palette.Wheel))
	}

	bodyY := wheelY + bodyHeight/2 + 0.1
	out = append(out, Cube("body", [3]float32{0, bodyY, 0}, [3]float32{0.6, bodyHeight, 1.0}, Palette.CarBody))

	cabY := bodyY + bodyHeight/2 + cabHeight/2
	out = append(out, Cube("cabin", [3]float32{0, cabY, 0.15}, [3]float32{0.5, cabHeight, 0.7}, Palette.CarBody))
	return out
}
