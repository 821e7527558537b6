// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pile defines tubular (pipe) pile cross-section data
package pile

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Section holds the geometry and material of a tubular pile. The soil
// inside the pile is assumed not to move with it (no plug), hence both
// the outside and inside surfaces carry skin friction.
type Section struct {

	// input
	D   float64 `json:"d"`   // outer diameter [m]
	Tw  float64 `json:"tw"`  // wall thickness [m]
	Rho float64 `json:"rho"` // material density [kg/m³]

	// derived
	Din   float64 // inner diameter
	Atip  float64 // annular cross-sectional (tip) area
	Perim float64 // combined outside+inside perimeter
}

// Init validates the input data and computes derived section properties
func (o *Section) Init() (err error) {
	if o.D <= 0 || o.Tw <= 0 || 2.0*o.Tw >= o.D {
		return chk.Err("pile section is incorrect: D=%g and t=%g must satisfy 0 < 2t < D", o.D, o.Tw)
	}
	if o.Rho <= 0 {
		return chk.Err("pile material density must be positive: ρ=%g is incorrect", o.Rho)
	}
	o.Din = o.D - 2.0*o.Tw
	o.Atip = math.Pi / 4.0 * (o.D*o.D - o.Din*o.Din)
	o.Perim = math.Pi * (o.D + o.Din)
	return
}

// Wembd computes the weight of the pile segment embedded down to z (≤ 0),
// a positive downward-acting magnitude since z is negative.
func (o *Section) Wembd(z, grav float64) float64 {
	return -o.Atip * z * o.Rho * grav
}
