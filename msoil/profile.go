// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msoil implements a layered soil stratigraphy model with the
// evaluators needed by pile capacity calculations: vertical effective
// overburden stress, undrained shear strength, and the API RP2A
// bearing-capacity factor.
//  Depth convention: z is a vertical coordinate, zero at the mudline and
//  negative below it. Layer bottoms are stored as positive-downward
//  distances from the mudline.
package msoil

import (
	"github.com/cpmech/gosl/chk"
)

// API RP2A lookup table: soil-pile friction angles versus Nq values
var (
	deltaTab = []float64{15, 20, 25, 30, 35} // friction angles [deg]
	nqTab    = []float64{8, 12, 20, 40, 50}  // bearing capacity factors [-]
)

// Profile holds an ordered set of soil layers, from the mudline downwards.
// The last layer extends indefinitely below its bottom.
type Profile struct {

	// input
	Zbots  []float64 `json:"zbots"`  // distances to layer bottoms below mudline; strictly ascending, first > 0 [m]
	Gammas []float64 `json:"gammas"` // effective unit weights of layers [N/m³]
	Cus    []float64 `json:"cus"`    // undrained shear strengths of layers [N/m²]
	Delta  float64   `json:"delta"`  // soil-pile friction angle; sand branch only [deg]
	Sand   bool      `json:"sand"`   // sand (true) or clay (false) constitutive branch

	// derived
	thick   []float64 // layer thicknesses
	weights []float64 // full-layer weight contributions = thickness * unit weight
}

// Init checks the layer data and precomputes thicknesses and weight
// contributions. It must be called before any evaluator.
func (o *Profile) Init() (err error) {
	n := len(o.Zbots)
	if n < 1 {
		return chk.Err("soil profile must have at least one layer")
	}
	if len(o.Gammas) != n || len(o.Cus) != n {
		return chk.Err("number of unit weights (%d) and shear strengths (%d) must match number of layer bottoms (%d)", len(o.Gammas), len(o.Cus), n)
	}
	if o.Zbots[0] <= 0 {
		return chk.Err("first layer bottom must be below the mudline: Zbots[0]=%g is incorrect", o.Zbots[0])
	}
	for i := 1; i < n; i++ {
		if o.Zbots[i] <= o.Zbots[i-1] {
			return chk.Err("layer bottoms must be strictly ascending: Zbots[%d]=%g must be greater than Zbots[%d]=%g", i, o.Zbots[i], i-1, o.Zbots[i-1])
		}
	}
	for i, gam := range o.Gammas {
		if gam <= 0 {
			return chk.Err("unit weight of layer %d must be positive: γ=%g is incorrect", i, gam)
		}
	}
	o.thick = make([]float64, n)
	o.weights = make([]float64, n)
	o.thick[0] = o.Zbots[0]
	o.weights[0] = o.thick[0] * o.Gammas[0]
	for i := 1; i < n; i++ {
		o.thick[i] = o.Zbots[i] - o.Zbots[i-1]
		o.weights[i] = o.thick[i] * o.Gammas[i]
	}
	return
}

// P0 computes the vertical effective overburden stress at depth z (≤ 0).
// Layers whose bottoms lie above z contribute their full weight; the
// partial column down to z extends the unit weight of the deepest such
// layer, so that each layer's properties hold down to the next bottom
// and the last layer extends indefinitely. A consequence: when a layer
// has a lower unit weight than the one above, the stress jumps down at
// the shared bottom; P0 is monotone with depth only for non-decreasing
// unit weights.
func (o *Profile) P0(z float64) float64 {
	d := -z // distance below mudline
	if d <= o.Zbots[0] {
		return d * o.Gammas[0] // within the first layer
	}
	res := 0.0
	k := 0
	for i, zb := range o.Zbots {
		if zb < d {
			res += o.weights[i]
			k = i
		}
	}
	return res + (d-o.Zbots[k])*o.Gammas[k]
}

// Cu computes the undrained shear strength at depth z (≤ 0) by linear
// interpolation over the layer-bottom table, clamped at both ends.
func (o *Profile) Cu(z float64) float64 {
	return interp(-z, o.Zbots, o.Cus)
}

// Nq returns the bearing-capacity factor corresponding to the friction
// angle, by clamped linear interpolation over the API RP2A table.
func (o *Profile) Nq() float64 {
	return interp(o.Delta, deltaTab, nqTab)
}

// interp performs linear interpolation of y(x) over the table (xp, yp);
// values outside the table are clamped to the nearest endpoint.
// xp must be ascending.
func interp(x float64, xp, yp []float64) float64 {
	n := len(xp)
	if x <= xp[0] {
		return yp[0]
	}
	if x >= xp[n-1] {
		return yp[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xp[i] {
			return yp[i-1] + (yp[i]-yp[i-1])*(x-xp[i-1])/(xp[i]-xp[i-1])
		}
	}
	return yp[n-1]
}
