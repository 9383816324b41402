// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Time contains the timing state for running the simulation
type Time struct {

	// accumulated simulated time in milliseconds -- monotonically
	// increasing, advanced by exactly DtMs per step
	Msec float32

	// step counter: total number of integration steps taken since reset
	Step int

	// amount of simulated time per step, in msec.  The explicit Euler
	// integration is only stable within the 0.05 - 0.1 range given the
	// fastest (sodium activation) time constant; arbitrary step sizes are
	// not supported.
	DtMs float32 `def:"0.05"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.DtMs = 0.05
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Msec = 0
	tm.Step = 0
	if tm.DtMs == 0 {
		tm.Defaults()
	}
}

// StepInc increments the step counter and advances simulated time by one step
func (tm *Time) StepInc() {
	tm.Step++
	tm.Msec += tm.DtMs
}
