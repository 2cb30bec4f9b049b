package ggmesh

import "time"

// FixedStep converts variable frame deltas into whole fixed-rate ticks.
// Time that does not make up a full tick carries over to the next call.
// The zero value is ready to use.
type FixedStep struct {
	residual time.Duration
}

// StepDuration returns the length of one tick at rate Hz.
func StepDuration(rate uint32) time.Duration {
	if rate == 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}

// Advance adds delta to the accumulator and returns how many ticks at
// rate Hz are now due. Negative deltas count as zero; a zero rate never ticks.
func (s *FixedStep) Advance(delta time.Duration, rate uint32) int {
	step := StepDuration(rate)
	if step == 0 {
		return 0
	}
	if delta > 0 {
		s.residual += delta
	}
	n := s.residual / step
	s.residual -= n * step
	return int(n)
}

// Residual returns the accumulated time not yet consumed by a tick.
func (s *FixedStep) Residual() time.Duration { return s.residual }

// Alpha returns how far the accumulator is into the next tick, in [0, 1).
// Renderers may use it to interpolate between fixed states.
func (s *FixedStep) Alpha(rate uint32) float64 {
	step := StepDuration(rate)
	if step == 0 {
		return 0
	}
	return float64(s.residual) / float64(step)
}

// Reset drops any accumulated time.
func (s *FixedStep) Reset() { s.residual = 0 }
