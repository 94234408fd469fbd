// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gobat/mdl/thermal"
	"github.com/cpmech/gosl/chk"
)

func newTestSim(thermalOpt string) *inp.Simulation {
	cell := &inp.CellParams{Name: "cell-a", Thermal: thermalOpt}
	return &inp.Simulation{
		Data: inp.Data{Cell: "cell-a"},
		Cell: cell,
	}
}

func Test_asm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm01. isothermal assembly")

	sim := newTestSim("isothermal")
	a, err := NewAssembler(sim)
	if err != nil {
		tst.Errorf("NewAssembler failed: %v\n", err)
		return
	}
	err = a.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	chk.Strings(tst, "order", a.Order, []string{"thermal"})

	T := a.Vars.Get(thermal.VarTemperature)
	if T == nil {
		tst.Errorf("missing variable %q\n", thermal.VarTemperature)
		return
	}
	chk.Strings(tst, "T regions", T.Regions(), field.CellRegions())
	for _, reg := range field.CellRegions() {
		chk.Float64(tst, "T @ "+reg, 1e-17, T.Eval(reg, 0.5), 0)
	}
	chk.IntAssert(len(a.InitConds), 0)
}

func Test_asm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm02. slot ordering")

	sim := newTestSim("isothermal")
	a, err := NewAssembler(sim)
	if err != nil {
		tst.Errorf("NewAssembler failed: %v\n", err)
		return
	}

	// synthetic slot consuming the thermal variables
	err = a.AddSlot(&Slot{
		Name:  "heat-source",
		Needs: []string{"thermal"},
		Build: func() (*field.Vars, map[string]*field.Field, error) {
			vars := field.NewVars()
			vars.Set("Heat source", field.Broadcast(0, field.CellRegions()...))
			return vars, nil, nil
		},
	})
	if err != nil {
		tst.Errorf("AddSlot failed: %v\n", err)
		return
	}

	err = a.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Strings(tst, "order", a.Order, []string{"thermal", "heat-source"})
	if a.Vars.Get("Heat source") == nil {
		tst.Errorf("missing variable from dependent slot\n")
	}

	// duplicated slots are rejected
	err = a.AddSlot(&Slot{Name: "thermal"})
	if err == nil {
		tst.Errorf("AddSlot should have failed for duplicate name\n")
	}
}

func Test_asm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm03. unknown thermal option")

	sim := newTestSim("adiabatic")
	_, err := NewAssembler(sim)
	if err == nil {
		tst.Errorf("NewAssembler should have failed for unknown thermal option\n")
	}
}

func Test_asm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm04. lumped assembly end-to-end")

	sim, err := inp.ReadSim("data/sim02.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	a, err := NewAssembler(sim)
	if err != nil {
		tst.Errorf("NewAssembler failed: %v\n", err)
		return
	}
	err = a.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	T := a.Vars.Get(thermal.VarTemperature)
	for _, reg := range field.CellRegions() {
		chk.Float64(tst, "T @ "+reg, 1e-15, T.Eval(reg, 0.5), 298.15)
	}
	chk.IntAssert(len(a.InitConds), 1)
}
