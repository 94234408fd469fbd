// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"testing"

	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_lumped01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped01")

	mdl, err := New("lumped")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	cell := &inp.CellParams{Name: "cell-b", Prms: []*dbf.P{
		&dbf.P{N: "rho", V: 2.85e6},
		&dbf.P{N: "h", V: 10.0},
		&dbf.P{N: "T0", V: 298.15},
	}}
	err = mdl.Init(cell)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	m := mdl.(*Lumped)
	chk.Float64(tst, "rho", 1e-15, m.Rho, 2.85e6)
	chk.Float64(tst, "h", 1e-15, m.H, 10.0)
	chk.Float64(tst, "T0", 1e-15, m.T0, 298.15)

	// uniform temperature at T0
	vars, err := mdl.FundamentalVariables(StdVarBuilder{})
	if err != nil {
		tst.Errorf("FundamentalVariables failed: %v\n", err)
		return
	}
	T := vars.Get(VarTemperature)
	for _, reg := range field.CellRegions() {
		chk.Float64(tst, "T @ "+reg, 1e-15, T.Eval(reg, 0.5), 298.15)
	}

	// zero flux
	q := vars.Get(VarHeatFlux)
	for _, reg := range field.CellRegions() {
		chk.Float64(tst, "q @ "+reg, 1e-17, q.Eval(reg, 0.5), 0)
	}

	// initial condition on the solved temperature
	iconds := mdl.InitialConditions(vars)
	chk.IntAssert(len(iconds), 1)
	T0 := iconds[VarTemperature]
	if T0 == nil {
		tst.Errorf("missing initial condition for %q\n", VarTemperature)
		return
	}
	for _, reg := range field.CellRegions() {
		chk.Float64(tst, "T0 @ "+reg, 1e-15, T0.Eval(reg, 0.5), 298.15)
	}
}

func Test_lumped02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped02. missing parameters")

	mdl := new(Lumped)
	err := mdl.Init(&inp.CellParams{Name: "cell-b", Prms: []*dbf.P{
		&dbf.P{N: "rho", V: 2.85e6},
	}})
	if err == nil {
		tst.Errorf("Init should have failed with missing parameters\n")
	}
}
