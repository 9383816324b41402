// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "github.com/goki/ki/kit"

// Model is the common contract for the membrane model variants: advance the
// shared State by one fixed step, given the stimulus current and the current
// parameter scaling factors.  The scaling factors are read fresh on every
// step -- a step must not assume they are constant between steps.
type Model interface {

	// Defaults sets default model parameters
	Defaults()

	// Update must be called after any changes to parameters
	Update()

	// Init sets the state to the model's resting configuration
	Init(st *State)

	// Step advances the state by one step of dt msec given the stimulus
	// current and the scaling factors for this step
	Step(st *State, sc *ScaleParams, stim, dt float32)
}

// ModelType selects which membrane model variant a Sim runs
type ModelType int32

//go:generate stringer -type=ModelType

var KiT_ModelType = kit.Enums.AddEnum(ModelTypeN, kit.NotBitFlag, nil)

func (ev ModelType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ModelType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The model variants
const (
	// Reduced is the single-state linear / sigmoid approximation of
	// excitability: fast, channel activations computed directly from
	// sigmoids of the membrane potential, Vm hard-clamped to [-90, 50]
	Reduced ModelType = iota

	// HH is the full Hodgkin-Huxley four-variable model: Vm plus the
	// m, h, n gating variables integrated by explicit Euler stepping with
	// temperature-scaled kinetics
	HH

	ModelTypeN
)

// NewModel returns a new model of the given type with default parameters
func NewModel(typ ModelType) Model {
	var md Model
	switch typ {
	case HH:
		md = &HHParams{}
	default:
		md = &ReducedParams{}
	}
	md.Defaults()
	return md
}
