// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kinetics provides the pure voltage- and temperature-dependent rate
functions for ion channel gating: the logistic sigmoid used by the reduced
model, the six Hodgkin-Huxley alpha / beta rate constants, and the Q10
temperature scaling factor.

The alpha functions belong to the x/(1-exp(-x)) family, which has a removable
singularity where the denominator's argument is exactly 0 -- ExpLinear guards
that point with the limit value, so no rate function ever produces NaN or Inf
over the full voltage domain.
*/
package kinetics

import "github.com/chewxy/math32"

// Sigmoid is the logistic function 1 / (1 + exp(-x/slope)),
// rising from 0 to 1 with midpoint at x = 0.
func Sigmoid(x, slope float32) float32 {
	return 1 / (1 + math32.Exp(-x/slope))
}

// ExpLinear computes x / (1 - exp(-x)), substituting the limit value near the
// removable singularity at x = 0 (first-order expansion 1 + x/2).
func ExpLinear(x float32) float32 {
	if math32.Abs(x) < 1e-4 {
		return 1 + x/2
	}
	return x / (1 - math32.Exp(-x))
}

// Rates are the Hodgkin-Huxley voltage-dependent rate constants for the
// m, h, n gating variables, in the original displacement-from-rest
// formulation: all voltage arguments are taken relative to VRest, so the
// same expressions hold regardless of where rest is anchored.
// All rates are in 1/msec at the reference temperature.
type Rates struct {
	VRest float32 `def:"-70" desc:"resting membrane potential in mV -- anchor for the displacement formulation"`
}

func (rt *Rates) Defaults() {
	rt.VRest = -70
}

// AlphaM is the sodium activation opening rate
func (rt *Rates) AlphaM(vm float32) float32 {
	v := vm - rt.VRest
	return ExpLinear((v - 25) / 10)
}

// BetaM is the sodium activation closing rate
func (rt *Rates) BetaM(vm float32) float32 {
	v := vm - rt.VRest
	return 4 * math32.Exp(-v/18)
}

// AlphaH is the sodium inactivation recovery rate
func (rt *Rates) AlphaH(vm float32) float32 {
	v := vm - rt.VRest
	return 0.07 * math32.Exp(-v/20)
}

// BetaH is the sodium inactivation onset rate
func (rt *Rates) BetaH(vm float32) float32 {
	v := vm - rt.VRest
	return Sigmoid(v-30, 10)
}

// AlphaN is the potassium activation opening rate
func (rt *Rates) AlphaN(vm float32) float32 {
	v := vm - rt.VRest
	return 0.1 * ExpLinear((v-10)/10)
}

// BetaN is the potassium activation closing rate
func (rt *Rates) BetaN(vm float32) float32 {
	v := vm - rt.VRest
	return 0.125 * math32.Exp(-v/80)
}

// MInf is the sodium activation steady state alpha / (alpha + beta)
func (rt *Rates) MInf(vm float32) float32 {
	a, b := rt.AlphaM(vm), rt.BetaM(vm)
	return a / (a + b)
}

// HInf is the sodium inactivation steady state
func (rt *Rates) HInf(vm float32) float32 {
	a, b := rt.AlphaH(vm), rt.BetaH(vm)
	return a / (a + b)
}

// NInf is the potassium activation steady state
func (rt *Rates) NInf(vm float32) float32 {
	a, b := rt.AlphaN(vm), rt.BetaN(vm)
	return a / (a + b)
}
