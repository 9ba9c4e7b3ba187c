package core

import "time"

// FixedStep paces generations so that at most one step runs per delay.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires once per delay. The first
// call to ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the interval between steps. It is safe to call from the
// main loop; non-positive delays fire on every call.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	f.step = delay
}

// Delay returns the configured interval.
func (f *FixedStep) Delay() time.Duration { return f.step }

// Reset drops accumulated time so the next step waits a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Bank at most one pending step.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
