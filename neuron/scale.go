// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"fmt"

	"github.com/Scorpio4938/MiniNeuron/kinetics"
	"github.com/chewxy/math32"
	"github.com/goki/mat32"
)

// Parameter domains enforced at the SetParams boundary
const (
	MinTempC     = float32(6)
	MaxTempC     = float32(40)
	MinCalciumMM = float32(0.5)
	MaxCalciumMM = float32(4)
)

// ScaleParams maps the externally supplied knobs (temperature, extracellular
// calcium, sodium blockade, stimulus) onto the coefficient multipliers
// consumed by the model variants, plus the calcium-derived outputs consumed
// only by the presentation layer.  The models read the derived factors fresh
// at the start of each step.
type ScaleParams struct {
	TemperatureC float32            `def:"23" min:"6" max:"40" desc:"bath temperature in degrees C -- scales all HH channel rate constants via Q10"`
	CalciumMM    float32            `def:"2" min:"0.5" max:"4" desc:"extracellular calcium concentration in mM -- scales the transmitter-release outputs and damps the reduced model noise term.  the membrane equations themselves are calcium-insensitive"`
	NaBlockFrac  float32            `min:"0" max:"1" desc:"fraction of sodium channels blocked (e.g., TTX) -- multiplies the reduced model sodium activation.  not applied to the HH rate equations, matching the source behavior"`
	StimCurrent  float32            `desc:"baseline stimulus current injected on every step, in uA/cm^2 -- transient pulses from TriggerPulse are added on top"`
	Q10          kinetics.Q10Params `view:"inline" desc:"temperature scaling of channel kinetics"`
	BaseCalcium  float32            `def:"2" desc:"baseline calcium in mM for computing CaFactor"`
	ReleaseGain  float32            `def:"0.5" desc:"gain mapping CaFactor onto the transmitter release probability"`

	TempFactor float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"Q10 rate multiplier = Q10.Factor(TemperatureC)"`
	CaFactor   float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"CalciumMM / BaseCalcium"`
	RelProb    float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"transmitter release probability = ReleaseGain * CaFactor, clamped to [0,1] -- consumed by the presentation layer only"`
	SynStren   float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"synaptic strength multiplier = CaFactor -- consumed by the presentation layer only"`
	NoiseScale float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"calcium damping on the reduced model noise term = 1 - CalciumMM/5, floored at 0"`
}

func (sc *ScaleParams) Defaults() {
	sc.TemperatureC = 23
	sc.CalciumMM = 2
	sc.NaBlockFrac = 0
	sc.StimCurrent = 0
	sc.Q10.Defaults()
	sc.BaseCalcium = 2
	sc.ReleaseGain = 0.5
	sc.Update()
}

// Update must be called after any changes to parameters
func (sc *ScaleParams) Update() {
	sc.TempFactor = sc.Q10.Factor(sc.TemperatureC)
	sc.CaFactor = sc.CalciumMM / sc.BaseCalcium
	sc.RelProb = mat32.Clamp(sc.ReleaseGain*sc.CaFactor, 0, 1)
	sc.SynStren = sc.CaFactor
	sc.NoiseScale = mat32.Max(1-sc.CalciumMM/5, 0)
}

// ParamUpdate is a partial update to the external parameters -- nil fields
// retain their previous values.
type ParamUpdate struct {
	TemperatureC *float32 `desc:"bath temperature in degrees C, domain [6, 40]"`
	CalciumMM    *float32 `desc:"extracellular calcium in mM, domain [0.5, 4]"`
	NaBlockFrac  *float32 `desc:"fraction of sodium channels blocked, domain [0, 1]"`
	StimCurrent  *float32 `desc:"baseline stimulus current in uA/cm^2"`
}

// Apply validates and applies the partial update.  Any out-of-domain or
// non-finite value rejects the entire update: prior values remain in place
// and nothing propagates into the integrators.
func (sc *ScaleParams) Apply(upd *ParamUpdate) error {
	if upd.TemperatureC != nil {
		t := *upd.TemperatureC
		if math32.IsNaN(t) || t < MinTempC || t > MaxTempC {
			return fmt.Errorf("ScaleParams Apply: temperature %v out of domain [%v, %v]", t, MinTempC, MaxTempC)
		}
	}
	if upd.CalciumMM != nil {
		ca := *upd.CalciumMM
		if math32.IsNaN(ca) || ca < MinCalciumMM || ca > MaxCalciumMM {
			return fmt.Errorf("ScaleParams Apply: calcium %v out of domain [%v, %v]", ca, MinCalciumMM, MaxCalciumMM)
		}
	}
	if upd.NaBlockFrac != nil {
		nb := *upd.NaBlockFrac
		if math32.IsNaN(nb) || nb < 0 || nb > 1 {
			return fmt.Errorf("ScaleParams Apply: sodium block fraction %v out of domain [0, 1]", nb)
		}
	}
	if upd.StimCurrent != nil && (math32.IsNaN(*upd.StimCurrent) || math32.IsInf(*upd.StimCurrent, 0)) {
		return fmt.Errorf("ScaleParams Apply: stimulus current %v is not finite", *upd.StimCurrent)
	}
	if upd.TemperatureC != nil {
		sc.TemperatureC = *upd.TemperatureC
	}
	if upd.CalciumMM != nil {
		sc.CalciumMM = *upd.CalciumMM
	}
	if upd.NaBlockFrac != nil {
		sc.NaBlockFrac = *upd.NaBlockFrac
	}
	if upd.StimCurrent != nil {
		sc.StimCurrent = *upd.StimCurrent
	}
	sc.Update()
	return nil
}
