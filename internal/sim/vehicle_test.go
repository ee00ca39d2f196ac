package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleAt(x, z, heading float64) *Vehicle {
	v := NewVehicle()
	v.Position.X, v.Position.Z = x, z
	v.Heading = heading
	return v
}

func TestNewVehicle_Defaults(t *testing.T) {
	v := NewVehicle()
	assert.Equal(t, Vec3{X: 7.5, Y: 0.55, Z: 0}, v.Position)
	assert.Equal(t, math.Pi, v.Heading)
	assert.Equal(t, 0.0, v.Speed)
	assert.InDelta(t, -0.105, v.MinSpeed(), 1e-12)
}

func TestVehicle_FrictionDecaysWithoutSignChange(t *testing.T) {
	for _, start := range []float64{0.15, -0.1, 0.0009} {
		v := vehicleAt(0, 0, 0)
		v.Speed = start
		prev := math.Abs(start)
		for i := 0; i < 600; i++ {
			v.Update(Snapshot{}, nil, IslandEdge)
			cur := math.Abs(v.Speed)
			require.LessOrEqual(t, cur, prev, "tick %d from %v", i, start)
			if start > 0 {
				require.GreaterOrEqual(t, v.Speed, 0.0)
			} else {
				require.LessOrEqual(t, v.Speed, 0.0)
			}
			prev = cur
		}
		assert.Less(t, math.Abs(v.Speed), 1e-5)
	}
}

func TestVehicle_SpeedStaysInRange(t *testing.T) {
	r := NewRand(7)
	v := vehicleAt(0, 0, 0)
	controls := []Action{ActionAccelerate, ActionReverse, ActionTurnLeft, ActionTurnRight}

	for i := 0; i < 5000; i++ {
		var in Snapshot
		for _, a := range controls {
			if r.Float64() < 0.5 {
				in = in.With(a)
			}
		}
		v.Update(in, nil, 1e6)
		require.GreaterOrEqual(t, v.Speed, v.MinSpeed())
		require.LessOrEqual(t, v.Speed, v.MaxSpeed)
		require.Greater(t, v.Heading, -math.Pi)
		require.LessOrEqual(t, v.Heading, math.Pi)
	}
}

func TestVehicle_InputResponse(t *testing.T) {
	tests := []struct {
		name        string
		held        []Action
		wantSpeed   float64
		wantHeading float64
	}{
		{"idle", nil, 0, 0},
		{"accelerate", []Action{ActionAccelerate}, VehicleAcceleration, 0},
		{"reverse", []Action{ActionReverse}, -VehicleAcceleration, 0},
		{"turn left", []Action{ActionTurnLeft}, 0, VehicleTurnRate},
		{"turn right", []Action{ActionTurnRight}, 0, -VehicleTurnRate},
		{"both pedals", []Action{ActionAccelerate, ActionReverse}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vehicleAt(0, 0, 0)
			v.Update(Snapshot{}.With(tt.held...), nil, IslandEdge)
			assert.InDelta(t, tt.wantSpeed, v.Speed, 1e-12)
			assert.InDelta(t, tt.wantHeading, v.Heading, 1e-12)
		})
	}
}

func TestVehicle_MovesAlongHeading(t *testing.T) {
	v := vehicleAt(0, 0, math.Pi/2)
	v.Speed = 0.1

	st := v.Update(Snapshot{}, nil, IslandEdge)

	assert.True(t, st.MovedX)
	assert.True(t, st.MovedZ)
	assert.False(t, st.Crept)
	assert.InDelta(t, 0.098, v.Position.X, 1e-12)
	assert.InDelta(t, 0, v.Position.Z, 1e-12)
	assert.Equal(t, 0.55, v.Position.Y)
}

// Scenario A: drive straight at the building at (-4, -3) and never get closer
// than the sum of the radii.
func TestVehicle_StopsBeforeBuilding(t *testing.T) {
	b := Building{Center: Vec2{X: -4, Z: -3}, Size: [3]float64{0.8, 2.0, 0.8}}
	obstacles := []Obstacle{b}
	minDist := VehicleRadius + b.Footprint().Radius

	v := vehicleAt(0, 0, math.Atan2(-4, -3))
	in := Snapshot{}.With(ActionAccelerate)

	hit := false
	closest := math.Inf(1)
	for i := 0; i < 300; i++ {
		st := v.Update(in, obstacles, IslandEdge)
		hit = hit || st.ObstacleHit
		d := v.Position.Planar().Dist(b.Center)
		require.GreaterOrEqual(t, d, minDist, "tick %d", i)
		closest = math.Min(closest, d)
	}
	assert.True(t, hit)
	assert.Less(t, closest, minDist+0.2)
}

// Scenario B: driving past x = 9 clamps to 8.9 and stops the vehicle.
func TestVehicle_BoundaryClampStops(t *testing.T) {
	v := vehicleAt(8.5, 0, math.Pi/2)
	v.MaxSpeed = 1
	v.Speed = 1

	st := v.Update(Snapshot{}, nil, IslandEdge)

	assert.True(t, st.BoundaryHit)
	assert.False(t, st.MovedX)
	assert.False(t, st.ObstacleHit)
	assert.InDelta(t, 8.9, v.Position.X, 1e-12)
	assert.Equal(t, 0.0, v.Speed)
}

// Scenario D: the diagonal step is blocked but the Z axis is free, so the
// vehicle still advances along Z.
func TestVehicle_AxisIndependentAdvance(t *testing.T) {
	obstacles := []Obstacle{
		Bush{Center: Vec2{X: 1.6, Z: 0}},
		Bush{Center: Vec2{X: -1.6, Z: 0}},
	}
	v := vehicleAt(0, 0, math.Pi/4)
	v.MaxSpeed = 0.5
	v.Speed = 0.5

	step := 0.5 * VehicleFriction * math.Sin(math.Pi/4)
	require.False(t, Admissible(Vec2{X: step, Z: step}, v.Radius, obstacles, IslandEdge))

	st := v.Update(Snapshot{}, obstacles, IslandEdge)

	assert.False(t, st.MovedX)
	assert.True(t, st.MovedZ)
	assert.False(t, st.Crept)
	assert.True(t, st.ObstacleHit)
	assert.Equal(t, CategoryBush, st.Hit)
	assert.InDelta(t, step, v.Position.Z, 1e-12)
	assert.True(t, Admissible(v.Position.Planar(), v.Radius, obstacles, IslandEdge))
	assert.InDelta(t, 0.5*VehicleFriction*CollisionDamping, v.Speed, 1e-12)
}

func TestVehicle_CreepsWhenBothAxesBlocked(t *testing.T) {
	// Wedged into a corner: both full axis steps collide.
	obstacles := []Obstacle{
		Bush{Center: Vec2{X: 1.5, Z: 0}},
		Bush{Center: Vec2{X: 0, Z: 1.5}},
	}
	v := vehicleAt(0, 0, math.Pi/4)
	v.MaxSpeed = 0.5
	v.Speed = 0.5

	st := v.Update(Snapshot{}, obstacles, IslandEdge)

	assert.True(t, st.Crept)
	assert.True(t, st.ObstacleHit)
	assert.True(t, Admissible(v.Position.Planar(), v.Radius, obstacles, IslandEdge))
	assert.True(t, v.Position.Planar().IsFinite())
}

func TestVehicle_StaysAdmissibleOnIsland(t *testing.T) {
	obstacles := []Obstacle{
		Building{Center: Vec2{X: -4, Z: -3}, Size: [3]float64{0.8, 2.0, 0.8}},
		Building{Center: Vec2{X: 4, Z: -3}, Size: [3]float64{1.0, 2.5, 1.0}},
		Tree{Center: Vec2{X: 6, Z: 0}},
		Tree{Center: Vec2{X: 0, Z: -5}},
		Bush{Center: Vec2{X: 2, Z: -1}},
		Bush{Center: Vec2{X: -2, Z: 1}},
	}
	r := NewRand(99)
	v := NewVehicle()
	require.True(t, Admissible(v.Position.Planar(), v.Radius, obstacles, IslandEdge))

	in := Snapshot{}.With(ActionAccelerate)
	for i := 0; i < 4000; i++ {
		if i%60 == 0 {
			in = Snapshot{}.With(ActionAccelerate)
			switch r.NextU64() % 3 {
			case 0:
				in = in.With(ActionTurnLeft)
			case 1:
				in = in.With(ActionTurnRight)
			}
		}
		v.Update(in, obstacles, IslandEdge)
		require.True(t, Admissible(v.Position.Planar(), v.Radius, obstacles, IslandEdge), "tick %d at %+v", i, v.Position)
	}
}

func TestVehicle_ModelMatrix(t *testing.T) {
	v := vehicleAt(2, -3, math.Pi/2)
	m := v.ModelMatrix()

	origin := m.Mul4x1([4]float32{0, 0, 0, 1})
	assert.InDelta(t, 2, origin[0], 1e-5)
	assert.InDelta(t, 0.55, origin[1], 1e-5)
	assert.InDelta(t, -3, origin[2], 1e-5)

	// Local +Z is the forward direction.
	fwd := m.Mul4x1([4]float32{0, 0, 1, 0})
	assert.InDelta(t, 1, fwd[0], 1e-5)
	assert.InDelta(t, 0, fwd[2], 1e-5)
}
