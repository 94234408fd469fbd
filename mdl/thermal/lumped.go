// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gosl/chk"
)

// Lumped implements a thermal model with one uniform cell temperature
//
//   rho * dT/dt = Q - h * (T - Tamb)
//
// where the temperature is a solved state starting from T0. Q and Tamb are
// supplied by other stages of the simulation.
type Lumped struct {
	cell *inp.CellParams
	Rho  float64 // volumetric heat capacity
	H    float64 // heat transfer coefficient at the cell surface
	T0   float64 // initial temperature
}

// add model to factory
func init() {
	allocators["lumped"] = func() Model { return new(Lumped) }
}

// Init initialises this structure
func (o *Lumped) Init(cell *inp.CellParams) (err error) {
	o.cell = cell
	prms := cell.Prms
	for _, key := range []string{"rho", "h", "T0"} {
		if prms.Find(key) == nil {
			return chk.Err("Lumped model: parameter %q must be given in database of cell parameters", key)
		}
	}
	prms.Connect(&o.Rho, "rho", "rho Lumped model")
	prms.Connect(&o.H, "h", "h Lumped model")
	prms.Connect(&o.T0, "T0", "T0 Lumped model")
	return
}

// FundamentalVariables builds the uniform temperature field at T0 and
// delegates to the standard builder
func (o *Lumped) FundamentalVariables(bld VarBuilder) (*field.Vars, error) {
	Tn := field.Broadcast(o.T0, field.RegNegElectrode)
	Ts := field.Broadcast(o.T0, field.RegSeparator)
	Tp := field.Broadcast(o.T0, field.RegPosElectrode)
	T := field.Concat(Tn, Ts, Tp)
	return bld.FundamentalVariables(T, o.Flux)
}

// Flux returns zero heat flux: the lumped temperature carries no spatial gradient
func (o *Lumped) Flux(T *field.Field) *field.Field {
	return field.Broadcast(0, field.CellRegions()...)
}

// InitialConditions sets the cell temperature to T0
func (o *Lumped) InitialConditions(vars *field.Vars) map[string]*field.Field {
	return map[string]*field.Field{
		VarTemperature: field.Broadcast(o.T0, field.CellRegions()...),
	}
}
