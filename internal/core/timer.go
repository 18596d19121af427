package core

import "time"

// maxCatchUp bounds how many generations a single Due call may report after a
// stall (window drag, debugger pause).
const maxCatchUp = 8

// MaxRate is the highest generation rate a FixedStep accepts.
const MaxRate = 1_000_000

// FixedStep paces simulation generations at a steady rate that is independent
// of the frame rate of whoever polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given
// generations per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate, clamped to MaxRate. It is safe to call
// from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	rate = min(rate, MaxRate)
	f.step = time.Second / time.Duration(rate)
}

// Rate reports the configured generations per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due reports how many generations should run since the previous call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Reset drops any accumulated time, e.g. after unpausing.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
