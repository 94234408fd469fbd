// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gosl/chk"
)

// names of standard fundamental variables
const (
	VarTemperature    = "Cell temperature"
	VarTemperatureNeg = "Negative electrode temperature"
	VarTemperatureSep = "Separator temperature"
	VarTemperaturePos = "Positive electrode temperature"
	VarHeatFlux       = "Heat flux"
)

// FluxFunc computes the heat flux for a given temperature field
type FluxFunc func(T *field.Field) *field.Field

// VarBuilder builds the standard fundamental variables shared by all thermal
// submodels from a temperature field and a flux computation
type VarBuilder interface {
	FundamentalVariables(T *field.Field, flux FluxFunc) (*field.Vars, error)
}

// StdVarBuilder implements the standard set of fundamental variables
type StdVarBuilder struct{}

// FundamentalVariables builds the variable dictionary from temperature T.
// T must span the three cell regions in canonical order.
func (o StdVarBuilder) FundamentalVariables(T *field.Field, flux FluxFunc) (vars *field.Vars, err error) {

	// check regions
	regions := T.Regions()
	canonical := field.CellRegions()
	if len(regions) != len(canonical) {
		return nil, chk.Err("temperature field must span %d regions; got %d", len(canonical), len(regions))
	}
	for i, reg := range canonical {
		if regions[i] != reg {
			return nil, chk.Err("temperature field region # %d must be %q; got %q", i, reg, regions[i])
		}
	}

	// per-region values
	Tn, err := T.At(field.RegNegElectrode)
	if err != nil {
		return nil, err
	}
	Ts, err := T.At(field.RegSeparator)
	if err != nil {
		return nil, err
	}
	Tp, err := T.At(field.RegPosElectrode)
	if err != nil {
		return nil, err
	}

	// variables
	vars = field.NewVars()
	vars.Set(VarTemperature, T)
	vars.Set(VarTemperatureNeg, field.Broadcast(Tn, field.RegNegElectrode))
	vars.Set(VarTemperatureSep, field.Broadcast(Ts, field.RegSeparator))
	vars.Set(VarTemperaturePos, field.Broadcast(Tp, field.RegPosElectrode))
	vars.Set(VarHeatFlux, flux(T))
	return
}
