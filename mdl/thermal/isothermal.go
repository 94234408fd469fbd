// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
)

// Isothermal implements the placeholder thermal model: the cell temperature
// is the constant zero field and the heat flux vanishes everywhere. It keeps
// the equation structure of the assembled model uniform when no thermal
// physics is wanted.
type Isothermal struct {
	cell *inp.CellParams // cell parameters; kept for the shared machinery, never read here
}

// add model to factory
func init() {
	allocators["isothermal"] = func() Model { return new(Isothermal) }
}

// Init stores the cell parameter set
func (o *Isothermal) Init(cell *inp.CellParams) (err error) {
	o.cell = cell
	return
}

// FundamentalVariables builds the zero temperature field over the three cell
// regions and delegates to the standard builder
func (o *Isothermal) FundamentalVariables(bld VarBuilder) (*field.Vars, error) {
	Tn := field.Broadcast(0, field.RegNegElectrode)
	Ts := field.Broadcast(0, field.RegSeparator)
	Tp := field.Broadcast(0, field.RegPosElectrode)
	T := field.Concat(Tn, Ts, Tp)
	return bld.FundamentalVariables(T, o.Flux)
}

// Flux returns zero heat flux since temperature is constant
func (o *Isothermal) Flux(T *field.Field) *field.Field {
	return field.Broadcast(0, field.CellRegions()...)
}

// InitialConditions returns no equations: temperature is not a solved state
func (o *Isothermal) InitialConditions(vars *field.Vars) map[string]*field.Field {
	return map[string]*field.Field{}
}
