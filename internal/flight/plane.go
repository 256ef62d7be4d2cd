package flight

import "github.com/avens-io/floatplane/internal/world"

// Plane couples a flight state to an airframe body and runs the full
// control pipeline once per tick. The four stages are strictly ordered and
// must run to completion before anything reads the pose or velocity for
// that tick: control mapping, bank/turn, water regime, momentum.
type Plane struct {
	State *State
	Body  *world.Body
	Opts  Options
}

func NewPlane(b *world.Body, opts Options) *Plane {
	return &Plane{
		State: NewState(b.Forward()),
		Body:  b,
		Opts:  opts,
	}
}

// Step advances the pipeline by one tick. onWater is the contact fact
// reported by the physics collaborator for the current pose; dt is the
// host frame delta in seconds.
func (p *Plane) Step(held ControlSet, onWater bool, dt float64) {
	c := ReadControls(held)
	ApplyThrottle(p.State, c, dt)

	p.Body.AngularVelocity = UpdateAttitude(p.State, c, onWater, dt, p.Opts)

	sailing := UpdateWater(p.State, p.Body, onWater, dt, p.Opts)

	UpdateMomentum(p.State, p.Body, sailing, dt, p.Opts)
}
