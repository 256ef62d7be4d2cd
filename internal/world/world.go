// Package world stands in for the external physics engine: it owns the
// airframe body, integrates pose from velocity, applies gravity and air
// drag while airborne, and answers the water-contact query. The flight
// pipeline treats it as a black box that produces contact facts and accepts
// velocity writes.
package world

import (
	"errors"
	"math"
)

const (
	DefaultGravity = 9.81
	DefaultAirDrag = 0.02

	// contactHeight is the altitude at or below which the hull counts as
	// touching the water surface.
	contactHeight = 0.5
)

// World holds the single airframe and the square water plane centred on
// the origin.
type World struct {
	WaterSize float64 // edge length of the water plane
	Gravity   float64
	AirDrag   float64
	Plane     *Body
}

// New validates the singleton preconditions once at startup: exactly one
// airframe over a positively sized water plane.
func New(waterSize float64, plane *Body) (*World, error) {
	if plane == nil {
		return nil, errors.New("world: no airframe body")
	}
	if waterSize <= 0 {
		return nil, errors.New("world: water size must be positive")
	}
	return &World{
		WaterSize: waterSize,
		Gravity:   DefaultGravity,
		AirDrag:   DefaultAirDrag,
		Plane:     plane,
	}, nil
}

// OnWater reports whether the airframe is in contact with the water
// surface this tick.
func (w *World) OnWater() bool {
	p := w.Plane.Position
	half := w.WaterSize / 2
	return p.Y() <= contactHeight && p.X() >= -half && p.X() <= half &&
		p.Z() >= -half && p.Z() <= half
}

// Step integrates the airframe pose for one tick. Gravity and drag act only
// while airborne; on water the flight pipeline's damping takes over.
func (w *World) Step(dt float64) {
	b := w.Plane
	if !w.OnWater() {
		v := b.LinearVelocity
		v[1] -= w.Gravity * dt
		drag := 1 - w.AirDrag*dt
		if drag < 0 {
			drag = 0
		}
		b.LinearVelocity = v.Mul(drag)
	}
	b.Position = b.Position.Add(b.LinearVelocity.Mul(dt))
	b.integrateOrientation(dt)
}

// Heading returns the airframe's compass heading in radians, derived from
// the horizontal nose direction.
func Heading(b *Body) float64 {
	f := b.Forward()
	return math.Atan2(f.X(), -f.Z())
}
