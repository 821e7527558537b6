// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopile/inp"
	"github.com/cpmech/gosl/chk"
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
	fnamepath, _ := io.ArgToFilename(0, "inp/data/pile-clay", ".emb", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGopile -- Pile Embedment Length\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read input data
	dsg, err := inp.ReadData("", fnamepath)
	if err != nil {
		chk.Panic("cannot read input data:\n%v", err)
	}

	// solve
	res := dsg.EmbedLength()
	if verbose {
		io.Pf("\nembedment depth  zembd = %g m\n", res.Zembd)
		io.Pf("tip capacity     Qtip  = %g N\n", res.Qtip)
		io.Pf("converged              = %v\n", res.Converged)
	}
	if !res.Converged {
		io.PfRed("\nembedment length not found; returned value is the last solver estimate\n")
	}
}
