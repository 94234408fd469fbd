// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Cellfile string `json:"cellfile"` // cell parameters file path, relative to the .sim file
	Cell     string `json:"cell"`     // name of cell parameter set to use
	Thermal  string `json:"thermal"`  // thermal option; empty means use the cell's default
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data Data `json:"data"` // global simulation data

	// derived
	CellDb *CellDb     // cell parameters database
	Cell   *CellParams // selected cell parameter set
}

// ReadSim reads a simulation from a .sim JSON file and resolves the cell
// parameters file referenced by it
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new simulation
	o = new(Simulation)

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot open simulation file %q: %v", simfilepath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// read cell database
	dir := filepath.Dir(simfilepath)
	o.CellDb, err = ReadCell(dir, o.Data.Cellfile)
	if err != nil {
		return nil, err
	}

	// selected cell
	o.Cell = o.CellDb.Get(o.Data.Cell)
	if o.Cell == nil {
		return nil, chk.Err("cannot find cell %q in %q", o.Data.Cell, o.Data.Cellfile)
	}
	return
}

// ThermalOption returns the name of the thermal submodel to use: the
// simulation's option when given, otherwise the cell's default
func (o *Simulation) ThermalOption() string {
	if o.Data.Thermal != "" {
		return o.Data.Thermal
	}
	return o.Cell.Thermal
}
