// Copyright (c) 2024, The MiniNeuron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// ConfigLog configures a fresh step-log table and attaches it to the Sim:
// every subsequent Advance appends one row.  Returns the table.
func (ss *Sim) ConfigLog() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "StepLog")
	dt.SetMetaData("desc", "per-step simulation record")
	sch := etable.Schema{
		{Name: "Msec", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "Vm", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "Inet", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "NaAct", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "KAct", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "GNa", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "GK", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "Spike", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "Rate", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "Cat", Type: etensor.STRING, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
	ss.Log = dt
	return dt
}

// LogStep appends one row for the given step result
func (ss *Sim) LogStep(sr *StepResult) {
	dt := ss.Log
	row := dt.Rows
	dt.AddRows(1)
	dt.SetCellFloat("Msec", row, float64(sr.Msec))
	dt.SetCellFloat("Vm", row, float64(sr.Vm))
	dt.SetCellFloat("Inet", row, float64(sr.Inet))
	dt.SetCellFloat("NaAct", row, float64(sr.NaAct))
	dt.SetCellFloat("KAct", row, float64(sr.KAct))
	dt.SetCellFloat("GNa", row, float64(sr.GNa))
	dt.SetCellFloat("GK", row, float64(sr.GK))
	dt.SetCellFloat("Spike", row, float64(ss.State.Spike))
	dt.SetCellFloat("Rate", row, float64(sr.FiringRate))
	dt.SetCellString("Cat", row, sr.Cat.String())
}
