package sim

import "math"

// Island boundary (half-extent of the drivable square, world units).
const (
	IslandEdge     = 9.0
	BoundaryMargin = 0.1
)

// Collision response.
const (
	PushGain         = 1.5  // push slightly past contact so the next frame does not re-trigger
	DistanceEpsilon  = 0.01 // below this the push normal is undefined
	NominalPush      = 0.5  // fixed displacement used when centres coincide
	CollisionDamping = 0.5
	MaxResolvePasses = 4
)

// Obstacle footprints.
const (
	BuildingRadiusScale = 0.8
	TreeRadius          = 0.5
	BushRadius          = 0.4
)

// Vehicle physics.
const (
	VehicleStartX        = 7.5
	VehicleStartY        = 0.55
	VehicleStartZ        = 0.0
	VehicleStartHeading  = math.Pi
	VehicleMaxSpeed      = 0.15
	VehicleReverseFactor = 0.7
	VehicleAcceleration  = 0.005
	VehicleFriction      = 0.98
	VehicleTurnRate      = 0.05
	VehicleRadius        = 1.0
	SpeedEpsilon         = 0.001
	CreepFactor          = 0.3
)

// Orbit camera.
const (
	CameraStartHeight   = 12.0
	CameraStartDistance = 18.0
	CameraRotateStep    = 0.02
	CameraHeightStep    = 0.2
	CameraDistanceStep  = 0.3
	CameraMinHeight     = 5.0
	CameraMaxHeight     = 25.0
	CameraMinDistance   = 8.0
	CameraMaxDistance   = 30.0
	CameraFOV           = math.Pi / 4
	CameraNear          = 0.1
	CameraFar           = 100.0
)

// Spotlight orbit and cone.
const (
	LightScrollGain     = 0.01 // radians per scroll unit
	LightOrbitRadius    = 10.0
	LightHeight         = 20.0
	LightTargetRadius   = 5.0
	LightInnerCutoff    = math.Pi / 6
	LightOuterCutoff    = math.Pi / 5
	LightAttnConstant   = 1.0
	LightAttnLinear     = 0.05
	LightAttnQuadratic  = 0.012
	LightNear           = 1.0
	LightFar            = 50.0
	ShadowMapSize       = 1024
	ShadowBiasSlope     = 0.005
	ShadowBiasMin       = 0.001
	ShadowedLightFactor = 0.5 // share of direct light removed in shadow
)

// Surface response used by the lit pass.
const (
	AmbientBoost  = 1.5
	DiffuseBoost  = 2.5
	SpecularBoost = 0.8
	Shininess     = 32.0
)

var (
	LightColor   = [3]float32{1.5, 1.5, 1.3}
	AmbientColor = [3]float32{0.4, 0.4, 0.4}
	ClearColor   = [3]float32{0.2, 0.2, 0.25}
)
