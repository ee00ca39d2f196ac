package sim

import (
	"fmt"
	"math"
)

// Category tags the kind of static obstacle a footprint belongs to.
type Category int

const (
	CategoryBuilding Category = iota
	CategoryTree
	CategoryBush
)

func (c Category) String() string {
	switch c {
	case CategoryBuilding:
		return "building"
	case CategoryTree:
		return "tree"
	case CategoryBush:
		return "bush"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Circle is a circular collision proxy on the ground plane.
type Circle struct {
	Center Vec2
	Radius float64
}

// Obstacle is a static collision footprint. The set of implementations is
// closed: Building, Tree and Bush.
type Obstacle interface {
	Category() Category
	Footprint() Circle
	obstacle()
}

// Building is a box-shaped obstacle. Size holds the half-extents in x and z
// and the full height in y, matching the mesh the scene builds for it.
type Building struct {
	Center Vec2
	Size   [3]float64
}

func (Building) Category() Category { return CategoryBuilding }
func (Building) obstacle()          {}

func (b Building) Footprint() Circle {
	return Circle{Center: b.Center, Radius: math.Max(b.Size[0], b.Size[2]) * BuildingRadiusScale}
}

// Tree is a trunk footprint; the canopy is not collidable.
type Tree struct {
	Center Vec2
}

func (Tree) Category() Category  { return CategoryTree }
func (Tree) obstacle()           {}
func (t Tree) Footprint() Circle { return Circle{Center: t.Center, Radius: TreeRadius} }

// Bush is the footprint of the central cube of a bush cluster.
type Bush struct {
	Center Vec2
}

func (Bush) Category() Category  { return CategoryBush }
func (Bush) obstacle()           {}
func (b Bush) Footprint() Circle { return Circle{Center: b.Center, Radius: BushRadius} }

// ValidateObstacles reports the first obstacle whose footprint is not a
// finite circle with a positive radius.
func ValidateObstacles(obstacles []Obstacle) error {
	for i, o := range obstacles {
		if o == nil {
			return fmt.Errorf("obstacle %d: nil", i)
		}
		fp := o.Footprint()
		if !fp.Center.IsFinite() {
			return fmt.Errorf("obstacle %d (%s): non-finite centre", i, o.Category())
		}
		if !(fp.Radius > 0) || math.IsInf(fp.Radius, 0) {
			return fmt.Errorf("obstacle %d (%s): radius %v must be positive", i, o.Category(), fp.Radius)
		}
	}
	return nil
}
