// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"fmt"

	"github.com/Scorpio4938/MiniNeuron/spike"
	"github.com/chewxy/math32"
	"github.com/emer/etable/etable"
)

// DivergeVm is the sanity envelope on the membrane potential, in mV.
// A step that leaves it indicates an unstable integration (e.g., a bad dt)
// and is treated as a fatal integration fault, not silently truncated.
const DivergeVm = float32(500)

// Sim is the single owner of the complete simulation state.  It drives
// fixed-step advancement of the selected membrane model and derives the
// discrete classification and events consumed by the presentation layer.
// It is single-threaded by design: one logical thread of control calls
// Advance, and cancellation is simply to stop calling it.
type Sim struct {
	Model    Model                `desc:"the membrane model variant"`
	State    State                `desc:"membrane state, mutated in place by every step"`
	Scale    ScaleParams          `view:"inline" desc:"external parameter knobs and their derived scaling factors"`
	Cats     spike.CategoryParams `view:"inline" desc:"membrane category threshold bands"`
	Detect   spike.DetectParams   `view:"inline" desc:"spike detection and firing-rate windowing parameters"`
	Detector spike.Detector       `desc:"spike detection state: windowed spike times, firing rate"`
	Time     Time                 `desc:"fixed-step simulation clock"`

	PulseAmp   float32 `inactive:"+" desc:"magnitude of the currently scheduled transient pulse, added to the baseline stimulus"`
	PulseUntil float32 `inactive:"+" desc:"simulated msec at which the pulse reverts to baseline -- checked on each Advance, no wall-clock timers"`

	Log *etable.Table `view:"-" desc:"optional step log -- each Advance appends a row when non-nil.  see ConfigLog"`
}

// NewSim returns a fully initialized simulation running the given model variant
func NewSim(typ ModelType) *Sim {
	ss := &Sim{}
	ss.Model = NewModel(typ)
	ss.Defaults()
	ss.Init()
	return ss
}

// Defaults sets default parameters for everything except the model, which
// NewModel already defaulted
func (ss *Sim) Defaults() {
	ss.Scale.Defaults()
	ss.Cats.Defaults()
	ss.Detect.Defaults()
	ss.Time.Defaults()
}

// Init resets the clock, the spike history, any scheduled pulse, and the
// membrane state back to rest
func (ss *Sim) Init() {
	ss.Time.Reset()
	ss.Detector.Init()
	ss.PulseAmp = 0
	ss.PulseUntil = 0
	ss.Model.Init(&ss.State)
	ss.State.Cat = ss.Cats.CategoryFmV(ss.State.Vm)
}

// SetParams applies a partial update to the external parameters, validating
// at this boundary.  On error, all prior values remain in place.
func (ss *Sim) SetParams(upd *ParamUpdate) error {
	return ss.Scale.Apply(upd)
}

// TriggerPulse schedules a transient stimulus current of the given magnitude,
// active for durMs of simulated time starting now, after which the stimulus
// auto-reverts to baseline.  The revert is explicit scheduled state evaluated
// inside Advance, so runs are deterministic and replayable.
func (ss *Sim) TriggerPulse(mag, durMs float32) {
	ss.PulseAmp = mag
	ss.PulseUntil = ss.Time.Msec + durMs
}

// StimFmPulse returns the stimulus current for the current step, reverting
// an expired pulse
func (ss *Sim) StimFmPulse() float32 {
	stim := ss.Scale.StimCurrent
	if ss.PulseAmp != 0 {
		if ss.Time.Msec < ss.PulseUntil {
			stim += ss.PulseAmp
		} else {
			ss.PulseAmp = 0
			ss.PulseUntil = 0
		}
	}
	return stim
}

// Advance runs exactly one fixed integration step and returns the result.
// Parameter values are snapshotted at the start of the step -- a concurrent
// SetParams between steps takes effect on the next Advance.
func (ss *Sim) Advance() (*StepResult, error) {
	if ss.Time.DtMs <= 0 {
		return nil, fmt.Errorf("Sim Advance: dt %v must be positive", ss.Time.DtMs)
	}
	stim := ss.StimFmPulse()
	prevVm := ss.State.Vm
	prevCat := ss.State.Cat

	ss.Model.Step(&ss.State, &ss.Scale, stim, ss.Time.DtMs)
	ss.Time.StepInc()

	if math32.Abs(ss.State.Vm) > DivergeVm {
		return nil, fmt.Errorf("Sim Advance: membrane potential %v mV diverged beyond +/- %v at %v msec -- integration fault", ss.State.Vm, DivergeVm, ss.Time.Msec)
	}

	sr := &StepResult{
		Msec:     ss.Time.Msec,
		Vm:       ss.State.Vm,
		Inet:     ss.State.Inet,
		NaAct:    ss.State.NaAct,
		KAct:     ss.State.KAct,
		GNa:      ss.State.GNa,
		GK:       ss.State.GK,
		RelProb:  ss.Scale.RelProb,
		SynStren: ss.Scale.SynStren,
	}

	if ss.Detect.Detect(&ss.Detector, ss.State.Vm, prevVm, ss.Time.Msec) {
		ss.State.Spike = 1
		sr.Events = append(sr.Events, Event{Type: SpikeDetected})
	} else {
		ss.State.Spike = 0
	}
	sr.FiringRate = ss.Detector.Rate

	ss.State.Cat = ss.Cats.CategoryFmV(ss.State.Vm)
	if ss.State.Cat != prevCat {
		sr.Events = append(sr.Events, Event{Type: CategoryChanged, From: prevCat, To: ss.State.Cat})
	}
	sr.Cat = ss.State.Cat

	if ss.Log != nil {
		ss.LogStep(sr)
	}
	return sr, nil
}

// Run advances n steps, forwarding each result to the renderer (nil ok).
// Returns on the first integration fault.
func (ss *Sim) Run(nsteps int, rend Renderer) error {
	for i := 0; i < nsteps; i++ {
		sr, err := ss.Advance()
		if err != nil {
			return err
		}
		if rend != nil {
			rend.Render(sr)
		}
	}
	return nil
}
