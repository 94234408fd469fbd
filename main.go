// Copyright 2017 The Gobat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gobat/asm"
	"github.com/cpmech/gobat/inp"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/sim01", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGobat Version 1.0 -- Battery Cell Simulation Models\n")
		io.Pf("Copyright 2017 The Gobat Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read simulation
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		io.PfRed("cannot read simulation: %v\n", err)
		return
	}

	// assemble model
	a, err := asm.NewAssembler(sim)
	if err != nil {
		io.PfRed("cannot create assembler: %v\n", err)
		return
	}
	err = a.Run()
	if err != nil {
		io.PfRed("assembly failed: %v\n", err)
		return
	}

	// results
	if verbose {
		io.Pf("\n")
		a.Report()
	}
}
