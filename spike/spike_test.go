// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spike

import (
	"testing"

	"github.com/chewxy/math32"
)

const difTol = float32(1.0e-6)

func TestCategoryBands(t *testing.T) {
	cp := CategoryParams{}
	cp.Defaults()

	tstv := []float32{-90, -80, -75, -70, -61, -60, -59, -30, -0.5, 0, 10, 40}
	corc := []Category{Hyperpolarizing, Hyperpolarizing, Hyperpolarizing, Resting, Resting, Resting,
		Repolarizing, Repolarizing, Repolarizing, Depolarizing, Depolarizing, Depolarizing}

	for i := range tstv {
		c := cp.CategoryFmV(tstv[i])
		if c != corc[i] {
			t.Errorf("category err: idx: %v, vm: %v, cat: %v, cor cat: %v\n", i, tstv[i], c, corc[i])
		}
	}
}

func TestDetectRefractory(t *testing.T) {
	dp := DetectParams{}
	dp.Defaults()
	dr := Detector{}
	dr.Init()

	if !dp.Detect(&dr, 10, -70, 1) {
		t.Errorf("first crossing not detected\n")
	}
	if dp.Detect(&dr, 10, -70, 3) {
		t.Errorf("crossing within refractory window was counted\n")
	}
	if !dp.Detect(&dr, 10, -70, 10) {
		t.Errorf("crossing after refractory window not detected\n")
	}
	if len(dr.Times) != 2 {
		t.Errorf("times count: %v, want 2\n", len(dr.Times))
	}
}

// TestDetectNoCrossing verifies that sitting above threshold, or approaching
// from above, never counts as a spike.
func TestDetectNoCrossing(t *testing.T) {
	dp := DetectParams{}
	dp.Defaults()
	dr := Detector{}
	dr.Init()

	if dp.Detect(&dr, 10, 5, 1) {
		t.Errorf("spike counted without an upward crossing\n")
	}
	if dp.Detect(&dr, -10, -70, 2) {
		t.Errorf("spike counted below threshold\n")
	}
}

func TestRateWindow(t *testing.T) {
	dp := DetectParams{}
	dp.Defaults()
	dr := Detector{}
	dr.Init()

	for _, tm := range []float32{100, 300, 1200, 2500} {
		if !dp.Detect(&dr, 30, -70, tm) {
			t.Errorf("spike at %v not detected\n", tm)
		}
	}
	if len(dr.Times) != 2 || dr.Times[0] != 1200 || dr.Times[1] != 2500 {
		t.Errorf("windowed times: %v, want [1200 2500]\n", dr.Times)
	}
	for i := 1; i < len(dr.Times); i++ {
		if dr.Times[i] < dr.Times[i-1] {
			t.Errorf("times not sorted ascending: %v\n", dr.Times)
		}
	}
	corRate := float32(2) / (dp.WindowMs / 1000)
	if math32.Abs(dr.Rate-corRate) > difTol {
		t.Errorf("rate: %v, want %v\n", dr.Rate, corRate)
	}
}
