// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "github.com/chewxy/math32"

// Q10Params computes the empirical temperature scaling multiplier applied to
// every channel rate constant: Factor = Base ^ ((T - RefTempC) / 10).
// The reference is anchored at the default operating temperature, so the
// rate constants as published apply unscaled at that point.
type Q10Params struct {
	Base     float32 `def:"3" min:"1" desc:"fold change in rate per 10 degrees C"`
	RefTempC float32 `def:"23" desc:"reference temperature in degrees C at which the factor is 1"`
}

func (qp *Q10Params) Defaults() {
	qp.Base = 3
	qp.RefTempC = 23
}

// Factor returns the rate multiplier for the given temperature in degrees C
func (qp *Q10Params) Factor(tempC float32) float32 {
	return math32.Pow(qp.Base, (tempC-qp.RefTempC)/10)
}
