// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spike

// DetectParams control spike detection and firing-rate windowing
type DetectParams struct {
	Thr       float32 `def:"0" desc:"spike threshold in mV -- a spike fires on an upward crossing of this value"`
	RefractMs float32 `def:"5" min:"0" desc:"refractory window in msec -- crossings within this window after the last spike are not counted, preventing double counting within one depolarization"`
	WindowMs  float32 `def:"2000" min:"1" desc:"retention window in msec for recent spike times -- entries older than this are evicted on every spike, and the firing rate is the count over this window"`
}

func (dp *DetectParams) Defaults() {
	dp.Thr = 0
	dp.RefractMs = 5
	dp.WindowMs = 2000
}

func (dp *DetectParams) Update() {
}

// Detector holds the spike detection state: the windowed list of recent
// spike times and the derived firing rate.
type Detector struct {
	Times     []float32 `desc:"recent spike times in msec, sorted ascending, windowed to WindowMs"`
	LastSpike float32   `desc:"time of the last detected spike in msec -- drives the refractory guard.  -1 when no spike has occurred"`
	Rate      float32   `desc:"firing rate in Hz -- count of windowed spike times divided by the window in seconds, recomputed on each spike"`
}

// Init clears the spike history
func (dr *Detector) Init() {
	dr.Times = dr.Times[:0]
	dr.LastSpike = -1
	dr.Rate = 0
}

// Detect checks for a spike at the given time: an upward crossing of Thr from
// prevVm to vm, outside the refractory window.  On a spike it records the
// time, evicts entries older than WindowMs, and recomputes Rate.
// Returns true if a spike was detected this step.
func (dp *DetectParams) Detect(dr *Detector, vm, prevVm, timeMs float32) bool {
	if prevVm >= dp.Thr || vm < dp.Thr {
		return false
	}
	if dr.LastSpike >= 0 && timeMs-dr.LastSpike < dp.RefractMs {
		return false
	}
	dr.LastSpike = timeMs
	dr.Times = append(dr.Times, timeMs)
	cut := timeMs - dp.WindowMs
	nev := 0
	for nev < len(dr.Times) && dr.Times[nev] < cut {
		nev++
	}
	if nev > 0 {
		dr.Times = append(dr.Times[:0], dr.Times[nev:]...)
	}
	dr.Rate = float32(len(dr.Times)) / (dp.WindowMs / 1000)
	return true
}
