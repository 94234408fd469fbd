// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.cell) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// CellParams holds the parameter set of one cell. Submodels keep a reference
// to this structure and must not copy or mutate it.
type CellParams struct {
	Name    string     `json:"name"`    // name of cell
	Desc    string     `json:"desc"`    // description of cell
	Thermal string     `json:"thermal"` // default thermal submodel; e.g. "isothermal", "lumped", "full-x"
	Prms    dbf.Params `json:"prms"`    // prms holds all model parameters for this cell
}

// CellsData holds cell parameter sets
type CellsData []*CellParams

// CellDb implements a database of cell parameter sets
type CellDb struct {

	// input
	Cells CellsData `json:"cells"` // all cells

	// derived
	cells map[string]*CellParams // cells by name
}

// ReadCell reads a database of cell parameter sets from a .cell JSON file
func ReadCell(dir, fn string) (cdb *CellDb, err error) {

	// new database
	cdb = new(CellDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot open cell parameters file %q: %v", filepath.Join(dir, fn), err)
	}

	// decode
	err = json.Unmarshal(b, cdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal cell parameters file %q: %v", fn, err)
	}

	// cells by name
	cdb.cells = make(map[string]*CellParams)
	for _, cell := range cdb.Cells {
		if _, ok := cdb.cells[cell.Name]; ok {
			return nil, chk.Err("duplicate cell name %q in %q", cell.Name, fn)
		}
		cdb.cells[cell.Name] = cell
	}
	return
}

// Get returns a cell parameter set by name or nil
func (o *CellDb) Get(name string) *CellParams {
	return o.cells[name]
}

// String prints one cell parameter set
func (o *CellParams) String() string {
	l := io.Sf("%q (thermal=%q)\n", o.Name, o.Thermal)
	for _, p := range o.Prms {
		l += io.Sf("  %-8s = %g\n", p.N, p.V)
	}
	return l
}

// String prints the database of cells
func (o *CellDb) String() string {
	l := ""
	for _, cell := range o.Cells {
		l += io.Sf("%v", cell)
	}
	return l
}
