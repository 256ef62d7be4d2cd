package flight

import "math"

// Flight envelope
const (
	MinSpeed     = 25.0
	MaxSpeed     = 80.0
	Acceleration = 10.0
	WaterSize    = 1500.0
)

// Handling
const (
	TurnSpeed           = 0.5
	PitchSensitivity    = 0.8
	BaseRollSensitivity = 0.2
	YawSensitivity      = 0.3
	Momentum            = 0.98
	TurnMomentum        = 0.99
	AutoLevelSpeed      = 0.9
	BankTurnRatio       = 0.5
	MaxBankAngle        = math.Pi / 9
)

// Water behaviour
const (
	WaterDamping            = 0.8
	WaterLevelSpeed         = 15.3
	WaterLevelRotationSpeed = 10.5
	WaterImpactThreshold    = 4.0
	WaterBounceFactor       = 0.4
	WaterImpactSlowdown     = 0.6
	WaterStopSpeed          = 0.95
	WaterStopThreshold      = 5.0
	WaterStabilizeFactor    = 0.9
	WaterSailingSpeed       = 5.0
	TakeoffSpeedThreshold   = 0.7
	TakeoffForce            = 2.0
)

// angularRateGain converts turn momentum and bank angle into the angular
// velocity written to the airframe.
const angularRateGain = 5.0

// bounceFloor is where the decaying impact bounce snaps to exactly zero.
const bounceFloor = 0.1

// hullHeight is the lowest altitude the hull may reach while on water.
const hullHeight = 0.1
