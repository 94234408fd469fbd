// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements piecewise constant field variables defined over
// the named regions of a battery cell
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// canonical region names, ordered along the cell thickness
const (
	RegNegElectrode = "negative electrode"
	RegSeparator    = "separator"
	RegPosElectrode = "positive electrode"
)

// CellRegions returns the canonical ordered list of cell region names
func CellRegions() []string {
	return []string{RegNegElectrode, RegSeparator, RegPosElectrode}
}

// piece holds one constant value spread over one region
type piece struct {
	region string  // region name
	value  float64 // constant value over region
}

// Field represents a piecewise constant scalar field over an ordered list of
// named regions. Fields are immutable after construction.
type Field struct {
	pieces []piece
}

// Broadcast spreads a constant value over each given region, in order
func Broadcast(value float64, regions ...string) *Field {
	o := new(Field)
	o.pieces = make([]piece, len(regions))
	for i, reg := range regions {
		o.pieces[i] = piece{region: reg, value: value}
	}
	return o
}

// Concat concatenates fields into a single field; the region order is the
// order of the arguments
func Concat(fields ...*Field) *Field {
	o := new(Field)
	for _, f := range fields {
		o.pieces = append(o.pieces, f.pieces...)
	}
	return o
}

// Regions returns the region names in order
func (o *Field) Regions() []string {
	regions := make([]string, len(o.pieces))
	for i, p := range o.pieces {
		regions[i] = p.region
	}
	return regions
}

// At returns the constant value held over a region
func (o *Field) At(region string) (value float64, err error) {
	for _, p := range o.pieces {
		if p.region == region {
			return p.value, nil
		}
	}
	return 0, chk.Err("region %q is not part of this field", region)
}

// Eval returns the field value at local coordinate x within region. Pieces
// are constants so x is immaterial; evaluation still resolves the region.
func (o *Field) Eval(region string, x float64) float64 {
	value, err := o.At(region)
	if err != nil {
		chk.Panic("cannot evaluate field: %v", err)
	}
	return value
}

// Gradient returns the spatial gradient of the field within region. Pieces
// are constants, so the gradient vanishes; the region lookup still applies.
func (o *Field) Gradient(region string) float64 {
	_, err := o.At(region)
	if err != nil {
		chk.Panic("cannot compute field gradient: %v", err)
	}
	return 0
}

// EqualValues reports whether this field spans the same regions, in the same
// order, holding the same values as another field, within tolerance tol
func (o *Field) EqualValues(other *Field, tol float64) bool {
	if len(o.pieces) != len(other.pieces) {
		return false
	}
	for i, p := range o.pieces {
		q := other.pieces[i]
		if p.region != q.region {
			return false
		}
		d := p.value - q.value
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// String returns a table with regions and values
func (o *Field) String() string {
	l := ""
	for _, p := range o.pieces {
		l += io.Sf("%-20s = %g\n", p.region, p.value)
	}
	return l
}
