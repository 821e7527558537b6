// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package emb solves for the embedment length of a pile under axial
// load, based on soil friction and toe capacity only (no lateral
// stability). Both the internal and external pile surfaces are assumed
// available for friction (no plug).
package emb

import (
	"math"

	"github.com/cpmech/gopile/msoil"
	"github.com/cpmech/gopile/pile"
	"github.com/cpmech/gopile/quad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Design holds the data for one embedment calculation: soil
// stratigraphy, pile section, head load and the capacity/solver
// parameters. It carries no state across calls and may be used from
// independent goroutines once initialised.
type Design struct {

	// input
	Soil  *msoil.Profile // soil stratigraphy
	Pile  *pile.Section  // pile cross-section
	Nhead float64        // axial force at the pile head (mudline), absolute value [N]
	Grav  float64        // gravity acceleration, absolute value [m/s²]

	// parameters
	SF     float64 // pile capacity safety factor (API RP2A)
	Kapi   float64 // lateral earth pressure coefficient: 0.8 unplugged, 1.0 plugged
	Guess  float64 // initial embedment depth estimate [m]
	Tol    float64 // quadrature convergence tolerance
	DivMax int     // quadrature subdivision budget
	MaxIt  int     // root-finder iteration budget
	Ftol   float64 // root-finder residual tolerance [N]
}

// Init validates the input data and sets default parameters. The soil
// profile and pile section must have been initialised already.
func (o *Design) Init(soil *msoil.Profile, sec *pile.Section, nhead, grav float64) (err error) {
	if soil == nil || sec == nil {
		return chk.Err("both a soil profile and a pile section are required")
	}
	if sec.Atip <= 0 {
		return chk.Err("pile section must be initialised before the embedment calculation")
	}
	if nhead < 0 {
		return chk.Err("head axial force must be given as an absolute value: Nhead=%g is incorrect", nhead)
	}
	if grav <= 0 {
		return chk.Err("gravity acceleration must be positive: g=%g is incorrect", grav)
	}
	o.Soil = soil
	o.Pile = sec
	o.Nhead = nhead
	o.Grav = grav

	// default parameters
	o.SF = 1.5
	o.Kapi = 0.8
	o.Guess = -15.0
	o.Tol = quad.Tol
	o.DivMax = quad.DivMax
	o.MaxIt = 20
	o.Ftol = 1e-4
	return
}

// SetPrms overrides capacity and solver parameters
func (o *Design) SetPrms(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sf":
			o.SF = p.V
		case "kapi":
			o.Kapi = p.V
		case "guess":
			o.Guess = p.V
		case "tol":
			o.Tol = p.V
		case "divmax":
			o.DivMax = int(p.V)
		case "maxit":
			o.MaxIt = int(p.V)
		case "ftol":
			o.Ftol = p.V
		default:
			return chk.Err("emb: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Fskin computes the allowable unit skin friction at depth z (≤ 0),
// already divided by the safety factor.
//  Sand: K・tan(δ)・p0(z)
//  Clay: α・cu(z) with ψ = cu/p0 and
//        α = min(1, 0.5 ψ^(-1/2))  for ψ ≤ 1
//        α = min(1, 0.5 ψ^(-1/4))  for ψ > 1
//  ψ is undefined at the mudline and wherever p0 vanishes; α = 0 there.
func (o *Design) Fskin(z float64) float64 {
	if o.Soil.Sand {
		return o.Kapi * math.Tan(o.Soil.Delta*math.Pi/180.0) * o.Soil.P0(z) / o.SF
	}
	cu := o.Soil.Cu(z)
	alp := 0.0
	if z != 0 {
		p0 := o.Soil.P0(z)
		if p0 > 0 && cu > 0 {
			psi := cu / p0
			if psi > 1 {
				alp = math.Min(1.0, 0.5*math.Pow(psi, -0.25))
			} else {
				alp = math.Min(1.0, 0.5*math.Pow(psi, -0.5))
			}
		}
	}
	return alp * cu / o.SF
}

// Qtip computes the allowable end-bearing capacity at tip depth z (≤ 0):
// the ultimate unit end-bearing times the annular tip area, divided by
// the safety factor.
func (o *Design) Qtip(z float64) float64 {
	if o.Soil.Sand {
		return o.Pile.Atip * o.Soil.P0(z) * o.Soil.Nq() / o.SF
	}
	return 9.0 * o.Pile.Atip * o.Soil.Cu(z) / o.SF
}
