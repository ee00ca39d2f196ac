package scene

// Mesh is an indexed triangle list with one normal and one colour per vertex.
// The three attribute slices hold 3 floats per vertex.
type Mesh struct {
	Name      string
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint16
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// Bounds returns the axis-aligned min and max corners of the mesh.
func (m *Mesh) Bounds() (min, max [3]float32) {
	for i := 0; i+2 < len(m.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := m.Positions[i+k]
			if i == 0 || v < min[k] {
				min[k] = v
			}
			if i == 0 || v > max[k] {
				max[k] = v
			}
		}
	}
	return min, max
}

type face struct {
	normal  [3]float32
	corners [4][3]float32
}

// Cube builds a box whose base centre is pos. The box spans x±w and z±d, and
// y from pos.y to pos.y+h.
func Cube(name string, pos, size [3]float32, color RGB) Mesh {
	x, y, z := pos[0], pos[1], pos[2]
	w, h, d := size[0], size[1], size[2]

	faces := [6]face{
		{[3]float32{0, 0, 1}, [4][3]float32{{x - w, y, z + d}, {x + w, y, z + d}, {x + w, y + h, z + d}, {x - w, y + h, z + d}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{x + w, y, z - d}, {x - w, y, z - d}, {x - w, y + h, z - d}, {x + w, y + h, z - d}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{x - w, y + h, z + d}, {x + w, y + h, z + d}, {x + w, y + h, z - d}, {x - w, y + h, z - d}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{x - w, y, z - d}, {x + w, y, z - d}, {x + w, y, z + d}, {x - w, y, z + d}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{x + w, y, z + d}, {x + w, y, z - d}, {x + w, y + h, z - d}, {x + w, y + h, z + d}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{x - w, y, z - d}, {x - w, y, z + d}, {x - w, y + h, z + d}, {x - w, y + h, z - d}}},
	}

	m := Mesh{
		Name:      name,
		Positions: make([]float32, 0, 24*3),
		Normals:   make([]float32, 0, 24*3),
		Colors:    make([]float32, 0, 24*3),
		Indices:   make([]uint16, 0, 36),
	}
	for fi, f := range faces {
		for _, c := range f.corners {
			m.Positions = append(m.Positions, c[0], c[1], c[2])
			m.Normals = append(m.Normals, f.normal[0], f.normal[1], f.normal[2])
			m.Colors = append(m.Colors, color.R, color.G, color.B)
		}
		base := uint16(fi * 4)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
