package sim

import "math"

// Vec2 is a point or offset on the horizontal (x, z) plane.
type Vec2 struct {
	X, Z float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Z: v.Z + o.Z} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Z: v.Z - o.Z} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Z: v.Z * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Z) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) IsFinite() bool       { return isFinite(v.X) && isFinite(v.Z) }

// At lifts the point to height y.
func (v Vec2) At(y float64) Vec3 { return Vec3{X: v.X, Y: y, Z: v.Z} }

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }
func (v Vec3) Mul(o Vec3) Vec3      { return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z} }
func (v Vec3) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Planar() Vec2         { return Vec2{X: v.X, Z: v.Z} }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Array() [3]float32 { return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)} }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
