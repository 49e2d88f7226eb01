package io

import (
	"time"
)

// WallClock measures real elapsed time between Elapsed calls. The
// first call starts the clock and reports zero.
type WallClock struct {
	last time.Time
}

var _ Clock = (*WallClock)(nil)

// Elapsed returns the seconds since the previous call.
func (wc *WallClock) Elapsed() (seconds float64) {
	now := time.Now()

	if !wc.last.IsZero() {
		seconds = now.Sub(wc.last).Seconds()
	}
	wc.last = now

	return
}

// StepClock is a deterministic Clock: every Elapsed call reports the
// same fixed step. Useful for exercising the timer interrupt without
// real waiting.
type StepClock struct {
	Step float64
}

var _ Clock = (*StepClock)(nil)

// Elapsed returns the fixed step.
func (sc *StepClock) Elapsed() (seconds float64) {
	return sc.Step
}
