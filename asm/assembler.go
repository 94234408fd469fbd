// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm implements the model assembly stage: it selects submodels
// according to the simulation options and merges their fundamental variables
// and initial conditions into one composed model
package asm

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gobat/mdl/thermal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/dominikbraun/graph"
)

// BuildFunc produces the fundamental variables and initial conditions of one
// submodel slot
type BuildFunc func() (vars *field.Vars, iconds map[string]*field.Field, err error)

// Slot represents one submodel slot of the composed model
type Slot struct {
	Name  string    // name of slot; e.g. "thermal"
	Needs []string  // slots whose variables this slot consumes
	Build BuildFunc // builds this slot's contribution
}

// Assembler composes submodels into one model
type Assembler struct {

	// input
	Sim *inp.Simulation // simulation data

	// selected submodels
	Thermal thermal.Model // thermal submodel chosen by the simulation options

	// assembled results
	Vars      *field.Vars             // merged fundamental variables
	InitConds map[string]*field.Field // merged initial conditions
	Order     []string                // slot build order

	// slots
	slots map[string]*Slot
	names []string
}

// NewAssembler allocates the assembler and selects submodels according to
// the simulation options
func NewAssembler(sim *inp.Simulation) (o *Assembler, err error) {

	// new assembler
	o = new(Assembler)
	o.Sim = sim
	o.slots = make(map[string]*Slot)

	// thermal submodel
	o.Thermal, err = thermal.New(sim.ThermalOption())
	if err != nil {
		return nil, err
	}
	err = o.Thermal.Init(sim.Cell)
	if err != nil {
		return nil, err
	}
	err = o.AddSlot(&Slot{
		Name: "thermal",
		Build: func() (*field.Vars, map[string]*field.Field, error) {
			vars, err := o.Thermal.FundamentalVariables(thermal.StdVarBuilder{})
			if err != nil {
				return nil, nil, err
			}
			return vars, o.Thermal.InitialConditions(vars), nil
		},
	})
	if err != nil {
		return nil, err
	}
	return
}

// AddSlot registers a submodel slot
func (o *Assembler) AddSlot(s *Slot) error {
	if _, ok := o.slots[s.Name]; ok {
		return chk.Err("slot %q is already registered", s.Name)
	}
	o.slots[s.Name] = s
	o.names = append(o.names, s.Name)
	return nil
}

// Run builds all slots in dependency order and merges their variables and
// initial conditions
func (o *Assembler) Run() (err error) {

	// dependency graph
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	for _, name := range o.names {
		err = g.AddVertex(name)
		if err != nil {
			return chk.Err("cannot add slot %q to dependency graph: %v", name, err)
		}
	}
	for _, name := range o.names {
		for _, dep := range o.slots[name].Needs {
			if _, ok := o.slots[dep]; !ok {
				return chk.Err("slot %q needs unknown slot %q", name, dep)
			}
			err = g.AddEdge(dep, name)
			if err != nil {
				return chk.Err("cannot add dependency %q -> %q: %v", dep, name, err)
			}
		}
	}
	o.Order, err = graph.TopologicalSort(g)
	if err != nil {
		return chk.Err("cannot order slots: %v", err)
	}

	// build and merge
	o.Vars = field.NewVars()
	o.InitConds = make(map[string]*field.Field)
	for _, name := range o.Order {
		vars, iconds, err := o.slots[name].Build()
		if err != nil {
			return err
		}
		for _, key := range vars.Keys() {
			if o.Vars.Get(key) != nil {
				return chk.Err("slot %q redefines variable %q", name, key)
			}
			o.Vars.Set(key, vars.Get(key))
		}
		for key, f := range iconds {
			if _, ok := o.InitConds[key]; ok {
				return chk.Err("slot %q redefines initial condition for %q", name, key)
			}
			o.InitConds[key] = f
		}
	}
	return
}

// Report prints a table with the assembled model
func (o *Assembler) Report() {
	io.Pf("assembled model for cell %q (thermal=%q)\n", o.Sim.Cell.Name, o.Sim.ThermalOption())
	io.Pf("slot order: %v\n", o.Order)
	for _, key := range o.Vars.Keys() {
		io.Pf("\n%q over %v\n%v", key, o.Vars.Get(key).Regions(), o.Vars.Get(key))
	}
	io.Pf("\ninitial conditions: %d\n", len(o.InitConds))
}
