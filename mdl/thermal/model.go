// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements thermal submodels of a battery cell
package thermal

import (
	"github.com/cpmech/gobat/field"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gosl/chk"
)

// Model defines thermal submodels
type Model interface {
	Init(cell *inp.CellParams) error                            // Init initialises this structure
	FundamentalVariables(bld VarBuilder) (*field.Vars, error)   // builds the fundamental variables
	Flux(T *field.Field) *field.Field                           // Flux returns the heat flux given temperature T
	InitialConditions(vars *field.Vars) map[string]*field.Field // initial conditions of solved states
}

// New thermal model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermal' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
