// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the
// embedment solver
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// EmbedSandUniform is the closed-form embedment solution for a tubular
// pile in a single uniform sand layer. With p0(z) = -γ z the shaft
// friction integral is quadratic in the embedment depth and equilibrium
// reads
//   a z² + b z - Nhead = 0
// with
//   a = K tan(δ) γ π (D + Di) / (2 SF)     (shaft friction)
//   b = Atip ρ g                           (embedded self-weight)
// For δ = 0 the friction vanishes and the equation degenerates to a
// linear one whose root b z = Nhead lies above the mudline, since the
// pile weight alone must balance the head force.
type EmbedSandUniform struct {

	// input
	D     float64 // pile outer diameter [m]
	Tw    float64 // pile wall thickness [m]
	Rho   float64 // pile material density [kg/m³]
	Gamma float64 // soil effective unit weight [N/m³]
	Delta float64 // soil-pile friction angle [deg]
	Kapi  float64 // lateral earth pressure coefficient
	SF    float64 // pile capacity safety factor
	Grav  float64 // gravity acceleration [m/s²]
	Nhead float64 // axial force at the pile head [N]

	// derived
	a float64 // quadratic coefficient
	b float64 // linear coefficient
}

// Init initialises this structure
func (o *EmbedSandUniform) Init(prms fun.Prms) {

	// default values
	o.D = 2.0
	o.Tw = 0.03
	o.Rho = 7850.0
	o.Gamma = 10000.0
	o.Delta = 30.0
	o.Kapi = 0.8
	o.SF = 1.5
	o.Grav = 9.8065
	o.Nhead = 1e6

	// parameters
	for _, p := range prms {
		switch p.N {
		case "D":
			o.D = p.V
		case "t":
			o.Tw = p.V
		case "rho":
			o.Rho = p.V
		case "gamma":
			o.Gamma = p.V
		case "delta":
			o.Delta = p.V
		case "kapi":
			o.Kapi = p.V
		case "sf":
			o.SF = p.V
		case "g":
			o.Grav = p.V
		case "nhead":
			o.Nhead = p.V
		}
	}

	// derived
	din := o.D - 2.0*o.Tw
	atip := math.Pi / 4.0 * (o.D*o.D - din*din)
	o.a = o.Kapi * math.Tan(o.Delta*math.Pi/180.0) * o.Gamma * math.Pi * (o.D + din) / (2.0 * o.SF)
	o.b = atip * o.Rho * o.Grav
}

// Zembd returns the equilibrium root: the negative root of the quadratic
// equation, or the (positive) root of the degenerate linear one.
func (o EmbedSandUniform) Zembd() float64 {
	if o.a == 0 {
		return o.Nhead / o.b
	}
	return (-o.b - math.Sqrt(o.b*o.b+4.0*o.a*o.Nhead)) / (2.0 * o.a)
}

// Residual evaluates the equilibrium equation at z
func (o EmbedSandUniform) Residual(z float64) float64 {
	return o.a*z*z + o.b*z - o.Nhead
}

// CheckZembd checks a numerically obtained embedment depth
func (o EmbedSandUniform) CheckZembd(tst *testing.T, zembd, tol float64) {
	chk.Scalar(tst, "zembd", tol, zembd, o.Zembd())
}
