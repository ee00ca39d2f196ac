package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Attenuation holds the coefficients of 1 / (c + l*d + q*d²).
type Attenuation struct {
	Constant, Linear, Quadratic float64
}

// At evaluates the attenuation factor at distance d.
func (a Attenuation) At(d float64) float64 {
	return 1.0 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

// Spotlight orbits the island. Position, target and direction are pure
// functions of OrbitAngle and are rebuilt by Orbit on every tick.
type Spotlight struct {
	OrbitAngle float64
	Position   Vec3
	Target     Vec3
	Direction  Vec3 // unit vector from Position toward Target

	InnerCutoff float64 // radians
	OuterCutoff float64
	Attenuation Attenuation
}

func NewSpotlight() *Spotlight {
	s := &Spotlight{
		InnerCutoff: LightInnerCutoff,
		OuterCutoff: LightOuterCutoff,
		Attenuation: Attenuation{
			Constant:  LightAttnConstant,
			Linear:    LightAttnLinear,
			Quadratic: LightAttnQuadratic,
		},
	}
	s.Orbit(0)
	return s
}

// Orbit advances the orbit angle by a scroll delta and re-derives the pose.
func (s *Spotlight) Orbit(scroll float64) {
	s.OrbitAngle += scroll * LightScrollGain
	sin, cos := math.Sincos(s.OrbitAngle)

	s.Target = Vec3{X: sin * LightTargetRadius, Y: 0, Z: cos * LightTargetRadius}
	s.Position = Vec3{X: sin * LightOrbitRadius, Y: LightHeight, Z: cos * LightOrbitRadius}

	dir := s.Target.Sub(s.Position)
	if dir.Len() > 0 {
		s.Direction = dir.Normalize()
	}
}

// CosCutoffs returns the cosines of the inner and outer cone angles, the form
// the lit pass compares against.
func (s *Spotlight) CosCutoffs() (inner, outer float64) {
	return math.Cos(s.InnerCutoff), math.Cos(s.OuterCutoff)
}

// LightSpaceMatrix is projection * view from the light. Both render passes
// call it with the current light, so it is never carried across frames.
func LightSpaceMatrix(s *Spotlight) mgl32.Mat4 {
	proj := mgl32.Perspective(float32(s.InnerCutoff*2), 1, LightNear, LightFar)
	view := mgl32.LookAtV(
		mgl32.Vec3(s.Position.Array()),
		mgl32.Vec3(s.Target.Array()),
		mgl32.Vec3{0, 1, 0},
	)
	return proj.Mul4(view)
}
