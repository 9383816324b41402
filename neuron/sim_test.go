// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSimClock(t *testing.T) {
	ss := NewSim(Reduced)
	sr, err := ss.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if ss.Time.Step != 1 {
		t.Errorf("step count: %v != 1\n", ss.Time.Step)
	}
	if dif := math32.Abs(sr.Msec - 0.05); dif > difTol {
		t.Errorf("msec after one step: %v != 0.05\n", sr.Msec)
	}
}

func TestSimDtError(t *testing.T) {
	ss := NewSim(Reduced)
	ss.Time.DtMs = 0
	if _, err := ss.Advance(); err == nil {
		t.Errorf("zero dt accepted\n")
	}
	ss.Time.DtMs = -0.05
	if _, err := ss.Advance(); err == nil {
		t.Errorf("negative dt accepted\n")
	}
}

func TestSimPulseRevert(t *testing.T) {
	ss := NewSim(Reduced)
	ss.TriggerPulse(5, 1)
	if ss.PulseAmp != 5 {
		t.Fatalf("pulse not scheduled: %v\n", ss.PulseAmp)
	}
	// 1.5 msec: past the pulse duration
	if err := ss.Run(30, nil); err != nil {
		t.Fatal(err)
	}
	if ss.PulseAmp != 0 || ss.PulseUntil != 0 {
		t.Errorf("pulse did not revert: amp: %v, until: %v\n", ss.PulseAmp, ss.PulseUntil)
	}
}

func TestSimSetParams(t *testing.T) {
	ss := NewSim(Reduced)
	stim := float32(12)
	if err := ss.SetParams(&ParamUpdate{StimCurrent: &stim}); err != nil {
		t.Fatal(err)
	}
	if ss.Scale.StimCurrent != 12 {
		t.Errorf("stimulus not applied: %v\n", ss.Scale.StimCurrent)
	}
}

func TestSimDiverge(t *testing.T) {
	ss := NewSim(HH)
	ss.Scale.StimCurrent = 1e9
	_, err := ss.Advance()
	if err == nil {
		t.Errorf("divergent step did not error\n")
	}
}

func TestSimLog(t *testing.T) {
	ss := NewSim(Reduced)
	dt := ss.ConfigLog()
	if err := ss.Run(10, nil); err != nil {
		t.Fatal(err)
	}
	if dt.Rows != 10 {
		t.Fatalf("log rows: %v != 10\n", dt.Rows)
	}
	if vm := dt.CellFloat("Vm", 9); math32.Abs(float32(vm)-ss.State.Vm) > difTol {
		t.Errorf("logged Vm: %v != state Vm: %v\n", vm, ss.State.Vm)
	}
	if cat := dt.CellString("Cat", 9); cat != ss.State.Cat.String() {
		t.Errorf("logged category: %v != %v\n", cat, ss.State.Cat.String())
	}
}
