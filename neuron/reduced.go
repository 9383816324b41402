// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"github.com/Scorpio4938/MiniNeuron/kinetics"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/minmax"
)

// ReducedParams implements the reduced single-state approximation of
// excitability: channel activations are computed directly from sigmoids of
// the membrane potential (not integrated), and Vm follows a one-line linear
// update.  The constants are fixed design choices of the approximation,
// taken as given rather than derived.
//
// The hard clamp on Vm is a deliberate compensating control against
// divergence, not a hidden truncation: it is what makes the one-line update
// safe to drive with arbitrary stimulus levels.
type ReducedParams struct {
	K          float32         `def:"0.02" desc:"overall rate constant on the one-line membrane update, in 1/msec per unit drive"`
	RestOffset float32         `def:"55" desc:"offset term -- the unstimulated equilibrium sits near -RestOffset mV, pulled slightly up by the sodium term"`
	WNa        float32         `def:"30" desc:"weight of the sodium activation drive"`
	WK         float32         `def:"25" desc:"weight of the potassium activation drive"`
	NaMid      float32         `def:"-20" desc:"sodium activation sigmoid midpoint in mV"`
	NaSlope    float32         `def:"6" desc:"sodium activation sigmoid slope in mV"`
	KMid       float32         `def:"10" desc:"potassium activation sigmoid midpoint in mV"`
	KSlope     float32         `def:"4" desc:"potassium activation sigmoid slope in mV"`
	InitVm     float32         `def:"-70" desc:"initial membrane potential in mV"`
	Noise      erand.RndParams `view:"inline" desc:"membrane noise distribution -- the generated value is damped by the calcium-dependent NoiseScale factor"`
	VmRange    minmax.F32      `view:"inline" desc:"hard clamp range for Vm -- [-90, 50]"`
}

func (rp *ReducedParams) Defaults() {
	rp.K = 0.02
	rp.RestOffset = 55
	rp.WNa = 30
	rp.WK = 25
	rp.NaMid = -20
	rp.NaSlope = 6
	rp.KMid = 10
	rp.KSlope = 4
	rp.InitVm = -70
	rp.Noise.Dist = erand.Gaussian
	rp.Noise.Mean = 0
	rp.Noise.Var = 0
	rp.VmRange.Min = -90
	rp.VmRange.Max = 50
	rp.Update()
}

// Update must be called after any changes to parameters
func (rp *ReducedParams) Update() {
}

// Init sets the state to the model's initial configuration
func (rp *ReducedParams) Init(st *State) {
	st.Vm = rp.InitVm
	st.M = 0
	st.H = 0
	st.N = 0
	st.Inet = 0
	st.Noise = 0
	st.Spike = 0
	rp.ActsFmV(st, 0)
}

// ActsFmV computes the channel activations directly from sigmoids of the
// current Vm.  The sodium activation is scaled by (1 - naBlock).
func (rp *ReducedParams) ActsFmV(st *State, naBlock float32) {
	st.NaAct = (1 - naBlock) * kinetics.Sigmoid(st.Vm-rp.NaMid, rp.NaSlope)
	st.KAct = kinetics.Sigmoid(st.Vm-rp.KMid, rp.KSlope)
	st.GNa = rp.WNa * st.NaAct
	st.GK = rp.WK * st.KAct
}

// Step advances Vm one step of dt msec:
// dV = K * (I - (Vm + RestOffset) + WNa*NaAct - WK*KAct + noise), then the
// hard clamp to VmRange.
func (rp *ReducedParams) Step(st *State, sc *ScaleParams, stim, dt float32) {
	rp.ActsFmV(st, sc.NaBlockFrac)
	if rp.Noise.Var > 0 {
		st.Noise = float32(rp.Noise.Gen(-1)) * sc.NoiseScale
	} else {
		st.Noise = 0
	}
	st.Inet = rp.K * (stim - (st.Vm + rp.RestOffset) + rp.WNa*st.NaAct - rp.WK*st.KAct + st.Noise)
	st.Vm = rp.VmRange.ClipVal(st.Vm + st.Inet*dt)
}
