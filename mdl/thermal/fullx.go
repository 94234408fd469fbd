// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gosl/chk"
)

// FullX implements a thermal model distributed along the cell thickness with
// per-region conductivities
//
//   q_r = -k_r * dT/dx   in region r
//
// Piecewise constant temperature fields carry no gradient, hence the flux of
// any such field is zero per region; the distributed transient term lives in
// the discretisation stage, outside this package.
type FullX struct {
	cell       *inp.CellParams
	Kn, Ks, Kp float64 // thermal conductivities: negative electrode, separator, positive electrode
	Rho        float64 // volumetric heat capacity
	T0         float64 // initial temperature
}

// add model to factory
func init() {
	allocators["full-x"] = func() Model { return new(FullX) }
}

// Init initialises this structure
func (o *FullX) Init(cell *inp.CellParams) (err error) {
	o.cell = cell
	prms := cell.Prms

	// conductivities: per-region or isotropic fallback
	kValues, kFound := prms.GetValues([]string{"kn", "ks", "kp"})
	allFound := true
	for _, found := range kFound {
		allFound = allFound && found
	}
	if !allFound {
		p := prms.Find("k")
		if p == nil {
			return chk.Err("FullX model: either 'k' (isotropic) or ['kn', 'ks', 'kp'] must be given in database of cell parameters")
		}
		o.Kn, o.Ks, o.Kp = p.V, p.V, p.V
	} else {
		o.Kn, o.Ks, o.Kp = kValues[0], kValues[1], kValues[2]
	}

	// remaining parameters
	for _, key := range []string{"rho", "T0"} {
		if prms.Find(key) == nil {
			return chk.Err("FullX model: parameter %q must be given in database of cell parameters", key)
		}
	}
	prms.Connect(&o.Rho, "rho", "rho FullX model")
	prms.Connect(&o.T0, "T0", "T0 FullX model")
	return
}

// FundamentalVariables builds the initial temperature field at T0 and
// delegates to the standard builder
func (o *FullX) FundamentalVariables(bld VarBuilder) (*field.Vars, error) {
	Tn := field.Broadcast(o.T0, field.RegNegElectrode)
	Ts := field.Broadcast(o.T0, field.RegSeparator)
	Tp := field.Broadcast(o.T0, field.RegPosElectrode)
	T := field.Concat(Tn, Ts, Tp)
	return bld.FundamentalVariables(T, o.Flux)
}

// Flux returns the conductive heat flux of T per region
func (o *FullX) Flux(T *field.Field) *field.Field {

	qn := field.Broadcast(-o.Kn*T.Gradient(field.RegNegElectrode), field.RegNegElectrode)
	qs := field.Broadcast(-o.Ks*T.Gradient(field.RegSeparator), field.RegSeparator)
	qp := field.Broadcast(-o.Kp*T.Gradient(field.RegPosElectrode), field.RegPosElectrode)
	return field.Concat(qn, qs, qp)
}

// InitialConditions sets the cell temperature to T0 over all regions
func (o *FullX) InitialConditions(vars *field.Vars) map[string]*field.Field {
	return map[string]*field.Field{
		VarTemperature: field.Broadcast(o.T0, field.CellRegions()...),
	}
}
