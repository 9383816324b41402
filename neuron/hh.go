// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"github.com/Scorpio4938/MiniNeuron/chans"
	"github.com/Scorpio4938/MiniNeuron/kinetics"
	"github.com/goki/mat32"
)

// HHParams implements the full Hodgkin-Huxley four-variable membrane model:
// Vm plus the m, h, n gating variables, integrated by explicit Euler stepping
// with temperature-scaled rate constants.
//
// Stability constraint: the explicit Euler step is only valid for the fixed
// dt range of 0.05 - 0.1 msec relative to the fastest (sodium activation)
// time constant -- arbitrary step sizes are not supported.  At the top of the
// temperature domain the Q10 factor can still push one gate step past its
// stable range, so each gate is clamped to [0, 1] after every update as a
// deliberate compensating control (see GatesFmV).
type HHParams struct {
	VRest float32        `def:"-70" desc:"resting membrane potential in mV -- anchors the rate functions and the reversal potentials, which are expressed as displacements from rest in the original formulation"`
	Gbar  chans.Chans    `view:"inline" desc:"[Defaults: 120, 36, 0.3] maximal conductances per channel species, in mS/cm^2"`
	Cm    float32        `def:"1" desc:"membrane capacitance in uF/cm^2"`
	Rates kinetics.Rates `view:"inline" desc:"voltage-dependent gating rate functions"`

	Erev chans.Chans `inactive:"+" view:"-" json:"-" xml:"-" desc:"reversal potentials per channel species in mV -- derived from VRest in Update"`
}

func (hp *HHParams) Defaults() {
	hp.VRest = -70
	hp.Gbar.SetAll(120, 36, 0.3)
	hp.Cm = 1
	hp.Rates.Defaults()
	hp.Update()
}

// Update must be called after any changes to parameters
func (hp *HHParams) Update() {
	hp.Rates.VRest = hp.VRest
	hp.Erev.SetFmRest(hp.VRest)
}

// Init sets the state to the resting configuration: Vm at VRest and each
// gate at its steady-state value for VRest.
func (hp *HHParams) Init(st *State) {
	st.Vm = hp.VRest
	st.M = hp.Rates.MInf(hp.VRest)
	st.H = hp.Rates.HInf(hp.VRest)
	st.N = hp.Rates.NInf(hp.VRest)
	st.Inet = 0
	st.Noise = 0
	st.Spike = 0
	hp.ActsFmGates(st)
}

// GatesFmV advances the gating variables one step of dt msec toward their
// steady states at the current Vm, using the rate-constant form
// g += dt * q10 * (alpha*(1-g) - beta*g), with a defensive clamp to [0, 1]
// (one Euler step can overshoot when dt * q10 * (alpha+beta) exceeds the
// stable range, which is reachable at high temperatures).
func (hp *HHParams) GatesFmV(st *State, q10, dt float32) {
	v := st.Vm
	st.M += dt * q10 * (hp.Rates.AlphaM(v)*(1-st.M) - hp.Rates.BetaM(v)*st.M)
	st.M = mat32.Clamp(st.M, 0, 1)
	st.H += dt * q10 * (hp.Rates.AlphaH(v)*(1-st.H) - hp.Rates.BetaH(v)*st.H)
	st.H = mat32.Clamp(st.H, 0, 1)
	st.N += dt * q10 * (hp.Rates.AlphaN(v)*(1-st.N) - hp.Rates.BetaN(v)*st.N)
	st.N = mat32.Clamp(st.N, 0, 1)
}

// ActsFmGates computes the channel open fractions and conductances from the
// current gating variables: NaAct = m^3*h, KAct = n^4.
func (hp *HHParams) ActsFmGates(st *State) {
	st.NaAct = st.M * st.M * st.M * st.H
	st.KAct = st.N * st.N * st.N * st.N
	st.GNa = hp.Gbar.Na * st.NaAct
	st.GK = hp.Gbar.K * st.KAct
}

// VmFmG computes the ionic currents from the conductances and advances Vm by
// one explicit Euler step.  No voltage clamp is applied: transient excursions
// beyond the reduced model's bounds are expected behavior here.
func (hp *HHParams) VmFmG(st *State, stim, dt float32) {
	ina := st.GNa * (st.Vm - hp.Erev.Na)
	ik := st.GK * (st.Vm - hp.Erev.K)
	il := hp.Gbar.L * (st.Vm - hp.Erev.L)
	st.Inet = stim - ina - ik - il
	st.Vm += dt * st.Inet / hp.Cm
}

// Step advances gates then membrane, one fixed step
func (hp *HHParams) Step(st *State, sc *ScaleParams, stim, dt float32) {
	hp.GatesFmV(st, sc.TempFactor, dt)
	hp.ActsFmGates(st)
	hp.VmFmG(st, stim, dt)
}
