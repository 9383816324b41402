// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spike provides the discrete classification layer over the continuous
membrane trajectory: a stateless membrane category derived from threshold
bands, and a spike detector with a refractory guard and a sliding window of
recent spike times for computing the firing rate.
*/
package spike

import "github.com/goki/ki/kit"

// Category is the discrete physiological state of the membrane.
// It is a pure function of the current membrane potential against fixed
// threshold bands, recomputed every step -- there is no transition memory.
type Category int32

//go:generate stringer -type=Category

var KiT_Category = kit.Enums.AddEnum(CategoryN, kit.NotBitFlag, nil)

func (ev Category) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Category) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The membrane categories
const (
	// Resting is the band around the resting potential
	Resting Category = iota

	// Depolarizing is the spike peak region at and above the depolarization threshold
	Depolarizing

	// Repolarizing is the region between the repolarization threshold and the
	// depolarization threshold
	Repolarizing

	// Hyperpolarizing is the undershoot region below the hyperpolarization threshold
	Hyperpolarizing

	CategoryN
)

// CategoryParams are the threshold bands mapping membrane potential onto a
// Category.  Checked top-down: depolarizing, then repolarizing, then
// hyperpolarizing, else resting.
type CategoryParams struct {
	DepolThr float32 `def:"0" desc:"membrane potential in mV at or above which the state is Depolarizing"`
	RepolThr float32 `def:"-60" desc:"membrane potential in mV above which (and below DepolThr) the state is Repolarizing"`
	HyperThr float32 `def:"-75" desc:"membrane potential in mV at or below which the state is Hyperpolarizing"`
}

func (cp *CategoryParams) Defaults() {
	cp.DepolThr = 0
	cp.RepolThr = -60
	cp.HyperThr = -75
}

func (cp *CategoryParams) Update() {
}

// CategoryFmV returns the category for the given membrane potential in mV
func (cp *CategoryParams) CategoryFmV(vm float32) Category {
	switch {
	case vm >= cp.DepolThr:
		return Depolarizing
	case vm > cp.RepolThr:
		return Repolarizing
	case vm <= cp.HyperThr:
		return Hyperpolarizing
	default:
		return Resting
	}
}
