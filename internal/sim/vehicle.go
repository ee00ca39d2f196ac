package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vehicle is the player's car. Y is fixed; only the ground-plane position,
// heading and scalar speed evolve.
type Vehicle struct {
	Position Vec3
	Heading  float64 // radians; forward is (sin h, cos h) on the x/z plane
	Speed    float64

	MaxSpeed      float64
	ReverseFactor float64
	Acceleration  float64
	Friction      float64
	TurnRate      float64
	Radius        float64
}

// Step reports what happened during one Vehicle.Update.
type Step struct {
	MovedX, MovedZ bool
	Crept          bool
	ObstacleHit    bool
	BoundaryHit    bool
	Hit            Category // last obstacle touched; valid when ObstacleHit
}

func NewVehicle() *Vehicle {
	return &Vehicle{
		Position:      Vec3{X: VehicleStartX, Y: VehicleStartY, Z: VehicleStartZ},
		Heading:       VehicleStartHeading,
		MaxSpeed:      VehicleMaxSpeed,
		ReverseFactor: VehicleReverseFactor,
		Acceleration:  VehicleAcceleration,
		Friction:      VehicleFriction,
		TurnRate:      VehicleTurnRate,
		Radius:        VehicleRadius,
	}
}

// MinSpeed is the most negative speed allowed when reversing.
func (v *Vehicle) MinSpeed() float64 { return -v.MaxSpeed * v.ReverseFactor }

// Update advances the vehicle by one frame.
func (v *Vehicle) Update(in Snapshot, obstacles []Obstacle, edge float64) Step {
	v.Speed *= v.Friction

	if in.Has(ActionAccelerate) {
		v.Speed = math.Min(v.Speed+v.Acceleration, v.MaxSpeed)
	}
	if in.Has(ActionReverse) {
		v.Speed = math.Max(v.Speed-v.Acceleration, v.MinSpeed())
	}
	if in.Has(ActionTurnLeft) {
		v.Heading += v.TurnRate
	}
	if in.Has(ActionTurnRight) {
		v.Heading -= v.TurnRate
	}
	v.Heading = wrapAngle(v.Heading)
	v.Speed = clampF(v.Speed, v.MinSpeed(), v.MaxSpeed)

	var st Step
	if math.Abs(v.Speed) <= SpeedEpsilon {
		return st
	}

	dx := math.Sin(v.Heading) * v.Speed
	dz := math.Cos(v.Heading) * v.Speed

	// X before Z: the order is observable against concave obstacle pairs.
	st.MovedX = v.tryMove(Vec2{X: v.Position.X + dx, Z: v.Position.Z}, obstacles, edge, &st)
	st.MovedZ = v.tryMove(Vec2{X: v.Position.X, Z: v.Position.Z + dz}, obstacles, edge, &st)

	if !st.MovedX && !st.MovedZ {
		st.Crept = true
		st.MovedX = v.tryMove(Vec2{X: v.Position.X + dx*CreepFactor, Z: v.Position.Z}, obstacles, edge, &st)
		st.MovedZ = v.tryMove(Vec2{X: v.Position.X, Z: v.Position.Z + dz*CreepFactor}, obstacles, edge, &st)
	}

	if st.ObstacleHit {
		v.Speed *= CollisionDamping
	}
	return st
}

// tryMove commits an admissible candidate. Otherwise the resolver's correction
// is taken when it is itself admissible (or when the vehicle is already stuck
// inside something), and the candidate is dropped.
func (v *Vehicle) tryMove(candidate Vec2, obstacles []Obstacle, edge float64, st *Step) bool {
	res := Resolve(candidate, v.Radius, obstacles, edge)
	if res.Admissible {
		v.setPlanar(candidate)
		return true
	}

	if res.Boundary {
		st.BoundaryHit = true
		v.Speed = 0
	}
	if res.Damping < 1 {
		st.ObstacleHit = true
		st.Hit = res.Hit
	}

	current := v.Position.Planar()
	if Admissible(res.Position, v.Radius, obstacles, edge) || !Admissible(current, v.Radius, obstacles, edge) {
		v.setPlanar(res.Position)
	}
	return false
}

func (v *Vehicle) setPlanar(p Vec2) {
	v.Position.X = p.X
	v.Position.Z = p.Z
}

// ModelMatrix places the vehicle meshes: translate to the position, then
// rotate about +Y by the heading.
func (v *Vehicle) ModelMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z))
	return t.Mul4(mgl32.HomogRotate3DY(float32(v.Heading)))
}

// Footprint is the vehicle's collision circle.
func (v *Vehicle) Footprint() Circle {
	return Circle{Center: v.Position.Planar(), Radius: v.Radius}
}
