// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"testing"
)

func TestReducedResting(t *testing.T) {
	ss := NewSim(Reduced)
	// 1000 msec unstimulated
	for i := 0; i < 20000; i++ {
		_, err := ss.Advance()
		if err != nil {
			t.Fatalf("Advance err at step %v: %v\n", i, err)
		}
	}
	if ss.State.Vm < -60 || ss.State.Vm > -50 {
		t.Errorf("reduced resting Vm: %v, expected in [-60, -50]\n", ss.State.Vm)
	}
	if n := len(ss.Detector.Times); n != 0 {
		t.Errorf("unstimulated membrane spiked %v times\n", n)
	}
}

func TestReducedSpike(t *testing.T) {
	ss := NewSim(Reduced)
	stim := float32(40)
	if err := ss.SetParams(&ParamUpdate{StimCurrent: &stim}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20000; i++ {
		_, err := ss.Advance()
		if err != nil {
			t.Fatalf("Advance err at step %v: %v\n", i, err)
		}
	}
	if n := len(ss.Detector.Times); n < 1 {
		t.Errorf("sustained stimulus produced no spikes\n")
	}
}

func TestReducedNaBlock(t *testing.T) {
	ss := NewSim(Reduced)
	block := float32(1)
	for _, stim := range []float32{10, 20, 30, 40, 50} {
		ss.Init()
		st := stim
		if err := ss.SetParams(&ParamUpdate{StimCurrent: &st, NaBlockFrac: &block}); err != nil {
			t.Fatal(err)
		}
		maxVm := ss.State.Vm
		for i := 0; i < 20000; i++ {
			sr, err := ss.Advance()
			if err != nil {
				t.Fatalf("Advance err at step %v: %v\n", i, err)
			}
			if sr.Vm > maxVm {
				maxVm = sr.Vm
			}
		}
		if n := len(ss.Detector.Times); n != 0 {
			t.Errorf("fully blocked membrane spiked %v times at stim %v\n", n, stim)
		}
		if maxVm >= 0 {
			t.Errorf("fully blocked membrane reached %v mV at stim %v\n", maxVm, stim)
		}
	}
}

func TestReducedClamp(t *testing.T) {
	ss := NewSim(Reduced)
	ss.Scale.StimCurrent = 1e6
	for i := 0; i < 1000; i++ {
		sr, err := ss.Advance()
		if err != nil {
			t.Fatalf("Advance err at step %v: %v\n", i, err)
		}
		if sr.Vm > 50 || sr.Vm < -90 {
			t.Fatalf("Vm %v escaped clamp range at step %v\n", sr.Vm, i)
		}
	}
	ss.Init()
	ss.Scale.StimCurrent = -1e6
	for i := 0; i < 1000; i++ {
		sr, err := ss.Advance()
		if err != nil {
			t.Fatalf("Advance err at step %v: %v\n", i, err)
		}
		if sr.Vm > 50 || sr.Vm < -90 {
			t.Fatalf("Vm %v escaped clamp range at step %v\n", sr.Vm, i)
		}
	}
}
