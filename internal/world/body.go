package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is the rigid-body view of the airframe: pose plus velocities, owned
// by the world and read/written by the flight pipeline.
type Body struct {
	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// NewBody returns a level body at the given position, facing -Z.
func NewBody(position mgl64.Vec3) *Body {
	return &Body{
		Position:    position,
		Orientation: mgl64.QuatIdent(),
	}
}

// SpawnBody returns a body posed from spawn parameters: pitch in radians
// (positive tilts the nose above the horizon) and compass heading in
// radians. Heading runs opposite the yaw rotation axis, so it is negated
// here.
func SpawnBody(position mgl64.Vec3, pitch, heading float64) *Body {
	b := NewBody(position)
	b.Orientation = mgl64.AnglesToQuat(pitch, -heading, 0, mgl64.XYZ)
	return b
}

// Forward returns the unit nose direction. A degenerate orientation falls
// back to the spawn heading instead of producing NaN.
func (b *Body) Forward() mgl64.Vec3 {
	f := b.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
	if l := f.Len(); l > 1e-9 && !math.IsNaN(l) {
		return f.Mul(1 / l)
	}
	return mgl64.Vec3{0, 0, -1}
}

// EulerXYZ decomposes the orientation into intrinsic X-Y-Z angles:
// pitch about X, yaw about Y, roll about Z. Negative pitch is nose up.
func (b *Body) EulerXYZ() (pitch, yaw, roll float64) {
	m := b.Orientation.Mat4()
	sy := mgl64.Clamp(m.At(0, 2), -1, 1)
	yaw = math.Asin(sy)
	pitch = math.Atan2(-m.At(1, 2), m.At(2, 2))
	roll = math.Atan2(-m.At(0, 1), m.At(0, 0))
	return pitch, yaw, roll
}

// integrateOrientation advances the orientation by the body's angular
// velocity over dt.
func (b *Body) integrateOrientation(dt float64) {
	w := b.AngularVelocity
	angle := w.Len() * dt
	if angle < 1e-12 {
		return
	}
	axis := w.Normalize()
	b.Orientation = mgl64.QuatRotate(angle, axis).Mul(b.Orientation).Normalize()
}
