package scene

// RGB is a linear colour with channels in [0,1].
type RGB struct {
	R, G, B float32
}

func (c RGB) Mul(k float32) RGB {
	return RGB{R: clamp01(c.R * k), G: clamp01(c.G * k), B: clamp01(c.B * k)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}

var Palette = struct {
	Earth     RGB
	Sandstone RGB
	Trunk     RGB
	Canopy    RGB
	Bush      RGB
	CarBody   RGB
	Wheel     RGB
	Footprint RGB
}{
	Earth:     RGB{R: 0.65, G: 0.50, B: 0.39},
	Sandstone: RGB{R: 0.76, G: 0.70, B: 0.50},
	Trunk:     RGB{R: 0.4, G: 0.25, B: 0.1},
	Canopy:    RGB{R: 0.15, G: 0.7, B: 0.15},
	Bush:      RGB{R: 0.1, G: 0.6, B: 0.1},
	CarBody:   RGB{R: 0.8, G: 0.2, B: 0.2},
	Wheel:     RGB{R: 0.1, G: 0.1, B: 0.1},
	Footprint: RGB{R: 1.0, G: 0.9, B: 0.1},
}

// BuildingColors are used in order for the island's buildings.
var BuildingColors = []RGB{
	{R: 0.7, G: 0.3, B: 0.3},
	{R: 0.3, G: 0.3, B: 0.7},
	{R: 0.3, G: 0.7, B: 0.3},
	{R: 0.7, G: 0.7, B: 0.3},
}
