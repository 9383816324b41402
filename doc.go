// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package minineuron is the overall repository for a small neuronal excitability
simulator implemented in the Go language (golang): a numeric membrane-potential
model stepped on a fixed clock, whose per-step results drive an external
presentation layer.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* chans: grouped per-species values (maximal conductances, reversal potentials)
for the sodium, potassium, and leak channels.

* kinetics: pure voltage- and temperature-dependent channel rate functions,
including the guarded x/(1-exp(-x)) family and Q10 temperature scaling.

* spike: the discrete classification layer -- membrane category from threshold
bands, spike detection with a refractory guard, and windowed firing rate.

* neuron: the integration core -- shared membrane State, the Model interface
with its two variants (reduced sigmoid approximation and full Hodgkin-Huxley),
parameter scaling, the fixed-step simulation clock, and step logging.

* examples: these compile into runnable programs.  examples/pulse runs either
model variant headless, injects stimulus pulses, and writes the step log as CSV.
*/
package minineuron
