package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles the origin. The eye position is derived from the three
// parameters every time it is read, so nothing accumulates between frames.
type OrbitCamera struct {
	Rotation float64
	Height   float64
	Distance float64
}

func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{Height: CameraStartHeight, Distance: CameraStartDistance}
}

// Apply consumes the held camera actions for one tick.
func (c *OrbitCamera) Apply(in Snapshot) {
	if in.Has(ActionCameraLeft) {
		c.Rotation -= CameraRotateStep
	}
	if in.Has(ActionCameraRight) {
		c.Rotation += CameraRotateStep
	}
	if in.Has(ActionCameraLower) {
		c.Height -= CameraHeightStep
	}
	if in.Has(ActionCameraRaise) {
		c.Height += CameraHeightStep
	}
	if in.Has(ActionZoomIn) {
		c.Distance -= CameraDistanceStep
	}
	if in.Has(ActionZoomOut) {
		c.Distance += CameraDistanceStep
	}
	c.Clamp()
}

func (c *OrbitCamera) Clamp() {
	c.Height = clampF(c.Height, CameraMinHeight, CameraMaxHeight)
	c.Distance = clampF(c.Distance, CameraMinDistance, CameraMaxDistance)
}

// Eye returns the world-space camera position.
func (c *OrbitCamera) Eye() Vec3 {
	return Vec3{
		X: math.Sin(c.Rotation) * c.Distance,
		Y: c.Height,
		Z: math.Cos(c.Rotation) * c.Distance,
	}
}

// View looks from the eye at the origin with +Y up.
func (c *OrbitCamera) View() mgl32.Mat4 {
	e := c.Eye().Array()
	return mgl32.LookAtV(mgl32.Vec3(e), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection is the camera perspective for a framebuffer of the given size.
func (c *OrbitCamera) Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbW > 0 && fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return mgl32.Perspective(CameraFOV, aspect, CameraNear, CameraFar)
}
