package ggmesh

import "time"

// Reference animation constants.
const (
	// DesiredRate is the fixed update rate in Hz.
	DesiredRate uint32 = 60

	// RotationIncrement is the rotation added per tick, in radians.
	RotationIncrement = 0.01
)

// AnimationState is the state advanced by an Animator and read by draw code.
type AnimationState struct {
	Rotation float64
	Ticks    uint64
}

// Animator advances an AnimationState in fixed increments.
//
// Every tick adds Increment to the rotation exactly once, regardless of
// how long the frame took, so animation speed does not depend on frame rate.
type Animator struct {
	Rate      uint32
	Increment float64

	clock FixedStep
}

// NewAnimator returns an animator at DesiredRate with RotationIncrement.
func NewAnimator() *Animator {
	return &Animator{Rate: DesiredRate, Increment: RotationIncrement}
}

// Advance accumulates a frame delta and applies the ticks that became due.
// It returns the number of ticks applied, which may be zero.
func (a *Animator) Advance(state *AnimationState, delta time.Duration) int {
	n := a.clock.Advance(delta, a.Rate)
	a.Apply(state, n)
	return n
}

// Update asks the host how many steps are due and applies them.
func (a *Animator) Update(state *AnimationState, t Ticker) int {
	n := t.ElapsedFixedSteps(a.Rate)
	a.Apply(state, n)
	return n
}

// Apply performs n ticks on state.
func (a *Animator) Apply(state *AnimationState, n int) {
	for range n {
		state.Rotation += a.Increment
	}
	if n > 0 {
		state.Ticks += uint64(n)
	}
}
