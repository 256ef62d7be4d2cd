// Package flight implements the seaplane's per-tick control and physics
// pipeline: discrete cockpit intents become a banked-turn attitude model,
// a water-contact regime (impact, bounce, leveling, sailing, takeoff), and
// an exponentially smoothed momentum integrator.
//
// The pipeline is deliberately a hand-tuned discrete-time state machine,
// not an aerodynamic model: lift, drag and water resistance are authored
// curves chosen for feel, and every numeric edge is handled by clamping
// rather than failing. One [Plane.Step] call runs the four stages in fixed
// order against a single exclusively owned [State]; nothing here blocks,
// spawns goroutines, or retries.
//
// Two smoothing constants ([Momentum], [TurnMomentum]) are applied per
// tick without dt compensation, which assumes a roughly constant tick
// rate. [Options.CompensatedSmoothing] opts into frame-rate independent
// blending.
package flight
