// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msoil

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the overburden stress and shear strength profiles from the
// mudline down to zmin (< 0). The caller is responsible for plt.Reset
// and for saving the figure.
func Plot(p *Profile, zmin float64, npts int) {
	Z := utl.LinSpace(zmin, 0, npts)
	P := make([]float64, npts)
	C := make([]float64, npts)
	for i, z := range Z {
		P[i] = p.P0(z)
		C[i] = p.Cu(z)
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, "'b-', clip_on=0")
	plt.Gll("$p_0$", "$z$", "")
	plt.Subplot(2, 1, 2)
	plt.Plot(C, Z, "'r-', clip_on=0")
	plt.Gll("$c_u$", "$z$", "")
}
