// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emb

import (
	"github.com/cpmech/gopile/quad"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// Result holds the outcome of one embedment calculation
type Result struct {
	Zembd     float64 // embedment depth at equilibrium (negative) [m]
	Qtip      float64 // allowable end-bearing capacity at Zembd [N]
	Converged bool    // root-finder converged
}

// Residual computes the axial equilibrium residual for a trial embedment
// depth zembd (negative): the shaft friction integral minus the embedded
// self-weight minus the head force. The pile weight assists penetration
// and therefore reduces the friction demand.
func (o *Design) Residual(zembd float64) (res float64, err error) {
	igr, err := quad.Romberg(func(z float64) float64 {
		return o.Fskin(z) * o.Pile.Perim
	}, zembd, 0, o.Tol, o.DivMax)
	if err != nil {
		return
	}
	return igr - o.Pile.Wembd(zembd, o.Grav) - o.Nhead, nil
}

// EmbedLength solves for the embedment depth at which axial equilibrium
// holds, starting from Guess. On non-convergence a warning is printed
// and the last solver estimate is returned with Converged unset; the
// caller decides whether an unconverged result is fatal.
func (o *Design) EmbedLength() (res Result) {
	var nls num.NlSolver
	defer nls.Clean()
	useDn, numJ := true, true
	nls.Init(1, func(fx, x []float64) (e error) {
		fx[0], e = o.Residual(x[0])
		return
	}, nil, nil, useDn, numJ, map[string]float64{"ftol": o.Ftol})
	nls.ChkConv = false
	if o.MaxIt > 0 {
		nls.MaxIt = o.MaxIt
	}
	x := []float64{o.Guess}
	err := nls.Solve(x, true)
	res.Zembd = x[0]
	res.Qtip = o.Qtip(x[0])
	res.Converged = err == nil
	if err != nil {
		io.PfRed("emb: embedment length not found: %v\n", err)
	}
	return
}
