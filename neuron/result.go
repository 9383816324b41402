// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"github.com/Scorpio4938/MiniNeuron/spike"
	"github.com/goki/ki/kit"
)

// EventType is the kind of discrete event emitted by a step
type EventType int32

//go:generate stringer -type=EventType

var KiT_EventType = kit.Enums.AddEnum(EventTypeN, kit.NotBitFlag, nil)

func (ev EventType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EventType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The event types
const (
	// SpikeDetected fires when the membrane potential crosses the spike
	// threshold upward, outside the refractory window
	SpikeDetected EventType = iota

	// CategoryChanged fires when the membrane category differs from the
	// previous step's category
	CategoryChanged

	EventTypeN
)

// Event is one discrete event emitted during a step
type Event struct {
	Type EventType      `desc:"the kind of event"`
	From spike.Category `desc:"previous category (CategoryChanged only)"`
	To   spike.Category `desc:"new category (CategoryChanged only)"`
}

// StepResult is the pure value returned from each Advance call -- the only
// contract the presentation layer sees.  The core never reaches into
// presentation state; the renderer polls or subscribes to these results.
type StepResult struct {
	Msec       float32        `desc:"simulated time at the end of this step, in msec"`
	Vm         float32        `desc:"membrane potential in mV"`
	Inet       float32        `desc:"net current driving the Vm update"`
	NaAct      float32        `desc:"sodium channel open fraction"`
	KAct       float32        `desc:"potassium channel open fraction"`
	GNa        float32        `desc:"sodium conductance"`
	GK         float32        `desc:"potassium conductance"`
	Cat        spike.Category `desc:"membrane category derived from Vm"`
	FiringRate float32        `desc:"windowed firing rate in Hz"`
	RelProb    float32        `desc:"calcium-derived transmitter release probability, for the renderer"`
	SynStren   float32        `desc:"calcium-derived synaptic strength multiplier, for the renderer"`
	Events     []Event        `desc:"discrete events emitted this step"`
}

// Renderer consumes step results and emits nothing back except through
// the Sim's own methods (TriggerPulse, SetParams).  A nil renderer is valid.
type Renderer interface {
	Render(sr *StepResult)
}
