// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron implements the numeric core of the excitability simulator:
the shared membrane State, the Model interface with its two variants
(reduced sigmoid approximation and full Hodgkin-Huxley), the parameter
scaling layer, and the fixed-step simulation driver that the presentation
layer consumes through StepResult values.
*/
package neuron

import (
	"fmt"
	"unsafe"

	"github.com/Scorpio4938/MiniNeuron/spike"
)

// StateVarStart is the byte offset of fields in the State structure
// where the float32 named variables start.
// Note: all non-float32 infrastructure variables must be at the start!
const StateVarStart = 4

// State holds all of the membrane-level state variables, shared by both
// model variants.  It is created once at simulation start and mutated in
// place by every step; the Sim is its single owner.
// All variables accessible via VarByName must be float32 and start at the
// top after Cat, in contiguous order.
type State struct {

	// current membrane category, derived from Vm each step
	Cat spike.Category

	// membrane potential in mV.  The reduced model clamps it to [-90, 50];
	// the HH model leaves it unclamped and it is expected to settle in
	// roughly [-90, 40].
	Vm float32

	// net current driving the Vm update, in uA/cm^2 for the HH model and
	// in the reduced model's own rate units
	Inet float32

	// HH sodium activation gating variable, in [0, 1]
	M float32

	// HH sodium inactivation gating variable, in [0, 1]
	H float32

	// HH potassium activation gating variable, in [0, 1]
	N float32

	// sodium channel open fraction, in [0, 1] -- m^3*h for the HH model,
	// the direct sigmoid activation for the reduced model
	NaAct float32

	// potassium channel open fraction, in [0, 1] -- n^4 for the HH model,
	// the direct sigmoid activation for the reduced model
	KAct float32

	// sodium conductance -- GbarNa * NaAct (HH, mS/cm^2) or WNa * NaAct (reduced)
	GNa float32

	// potassium conductance -- GbarK * KAct (HH, mS/cm^2) or WK * KAct (reduced)
	GK float32

	// noise value added to the membrane update this step (reduced model only)
	Noise float32

	// whether a spike was detected this step (0 or 1)
	Spike float32
}

var StateVars = []string{"Vm", "Inet", "M", "H", "N", "NaAct", "KAct", "GNa", "GK", "Noise", "Spike"}

var StateVarsMap map[string]int

func init() {
	StateVarsMap = make(map[string]int, len(StateVars))
	for i, v := range StateVars {
		StateVarsMap[v] = i
	}
}

func (st *State) VarNames() []string {
	return StateVars
}

// StateVarIndexByName returns the index of the variable in the State, or error
func StateVarIndexByName(varNm string) (int, error) {
	i, ok := StateVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("State VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in StateVars list)
func (st *State) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(st)) + uintptr(StateVarStart+4*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (st *State) VarByName(varNm string) (float32, error) {
	i, err := StateVarIndexByName(varNm)
	if err != nil {
		return 0, err
	}
	return st.VarByIndex(i), nil
}
