// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/cpmech/gosl/io"

// Vars implements an insertion-ordered dictionary from variable name to field
type Vars struct {
	keys []string
	data map[string]*Field
}

// NewVars returns an empty dictionary
func NewVars() *Vars {
	o := new(Vars)
	o.data = make(map[string]*Field)
	return o
}

// Set adds or overwrites a variable. Overwriting keeps the original position.
func (o *Vars) Set(name string, f *Field) {
	if _, ok := o.data[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.data[name] = f
}

// Get returns a variable or nil
func (o *Vars) Get(name string) *Field {
	return o.data[name]
}

// Keys returns the variable names in insertion order
func (o *Vars) Keys() []string {
	return o.keys
}

// Len returns the number of variables
func (o *Vars) Len() int {
	return len(o.keys)
}

// String returns a table with all variables
func (o *Vars) String() string {
	l := ""
	for _, key := range o.keys {
		l += io.Sf("%q\n%v", key, o.data[key])
	}
	return l
}
