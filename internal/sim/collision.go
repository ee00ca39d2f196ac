package sim

import "math"

const separationSlack = 1e-9

// Resolution is the outcome of testing one candidate vehicle position.
type Resolution struct {
	Admissible bool
	Position   Vec2 // candidate, or the corrected position when not admissible
	Boundary   bool // the island edge was crossed; the caller stops the vehicle
	Damping    float64
	Hit        Category // last obstacle corrected against; valid when Damping < 1
}

// Resolve tests a candidate position for a circular vehicle against the island
// boundary and every obstacle footprint, and pushes it out of any overlap.
//
// The boundary is checked first and is terminal: the offending axis is clamped
// just inside the edge and obstacles are not examined. Obstacles are resolved
// one after another on the running corrected position; the sweep is repeated
// while it still moves the position, up to MaxResolvePasses times.
func Resolve(candidate Vec2, vehicleRadius float64, obstacles []Obstacle, edge float64) Resolution {
	res := Resolution{Admissible: true, Position: candidate, Damping: 1}

	if math.Abs(candidate.X) > edge {
		res.Admissible = false
		res.Boundary = true
		res.Position.X = sign(candidate.X) * (edge - BoundaryMargin)
		return res
	}
	if math.Abs(candidate.Z) > edge {
		res.Admissible = false
		res.Boundary = true
		res.Position.Z = sign(candidate.Z) * (edge - BoundaryMargin)
		return res
	}

	p := candidate
	for pass := 0; pass < MaxResolvePasses; pass++ {
		corrected := false
		for _, o := range obstacles {
			fp := o.Footprint()
			minDist := vehicleRadius + fp.Radius
			if p.Dist(fp.Center) >= minDist {
				continue
			}
			p = separate(p, fp.Center, minDist)
			corrected = true
			res.Admissible = false
			res.Damping = CollisionDamping
			res.Hit = o.Category()
		}
		if !corrected {
			break
		}
	}
	res.Position = p
	return res
}

// separate moves p out of a circle of radius minDist around c.
func separate(p, c Vec2, minDist float64) Vec2 {
	d := p.Sub(c)
	dist := d.Len()
	if dist > DistanceEpsilon {
		p = p.Add(d.Scale((minDist - dist) * PushGain / dist))
	} else {
		p = p.Add(Vec2{X: NominalPush, Z: NominalPush})
	}

	// Second step along the same normal for whatever overlap is left. The
	// target is nudged past minDist so rounding cannot leave p a hair inside.
	d = p.Sub(c)
	dist = d.Len()
	if dist < minDist && dist > 0 {
		p = p.Add(d.Scale((minDist*(1+separationSlack) - dist) / dist))
	}
	return p
}

// Admissible reports whether p violates neither the boundary nor any footprint.
func Admissible(p Vec2, vehicleRadius float64, obstacles []Obstacle, edge float64) bool {
	if math.Abs(p.X) > edge || math.Abs(p.Z) > edge {
		return false
	}
	for _, o := range obstacles {
		fp := o.Footprint()
		if p.Dist(fp.Center) < vehicleRadius+fp.Radius {
			return false
		}
	}
	return true
}
