// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "testing"

func TestStateVarAccess(t *testing.T) {
	st := &State{}
	st.Vm = -70
	st.M = 0.05
	st.KAct = 0.1

	for _, nm := range []string{"Vm", "M", "KAct"} {
		v, err := st.VarByName(nm)
		if err != nil {
			t.Fatal(err)
		}
		var cor float32
		switch nm {
		case "Vm":
			cor = -70
		case "M":
			cor = 0.05
		case "KAct":
			cor = 0.1
		}
		if v != cor {
			t.Errorf("var %v: %v != %v\n", nm, v, cor)
		}
	}
	if _, err := st.VarByName("Bogus"); err == nil {
		t.Errorf("unknown var name accepted\n")
	}
}
