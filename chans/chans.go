// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides grouped per-species values for the ion channels used in
computing membrane currents (i.e., basic Ohms law equations): voltage-gated
sodium, delayed-rectifier potassium, and the passive leak channel.
*/
package chans

// Chans are per-species ion channel values used in computing membrane currents
type Chans struct {
	Na float32 `desc:"voltage-gated sodium (Na+) channels -- activated by depolarization, drive the spike upstroke"`
	K  float32 `desc:"delayed-rectifier potassium (K+) channels -- repolarize the membrane after a spike"`
	L  float32 `desc:"constant leak channels -- together with the gated channels, determines the resting potential"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l float32) {
	ch.Na, ch.K, ch.L = na, k, l
}

// SetFmRest sets the values as the classic squid-axon reversal potentials,
// expressed as displacements from the given resting potential:
// Na = rest + 115, K = rest - 12, L = rest + 10.613 mV.
// The leak displacement is the one that balances the total membrane
// current exactly at rest.
func (ch *Chans) SetFmRest(vrest float32) {
	ch.Na = vrest + 115
	ch.K = vrest - 12
	ch.L = vrest + 10.613
}
