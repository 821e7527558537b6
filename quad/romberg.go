// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements adaptive quadrature of scalar functions
package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// default parameters
const (
	Tol    = 1.48e-8 // default convergence tolerance on successive estimates
	DivMax = 10      // default maximum number of interval subdivisions
)

// Romberg integrates f from a to b using the trapezoidal rule with
// Richardson extrapolation. Subdivision stops when two successive
// diagonal estimates agree within tol or when divmax halvings have been
// performed; in the latter case the best available estimate is returned
// without error. An error is returned only when the bounds or the
// estimate are not finite.
func Romberg(f func(x float64) float64, a, b, tol float64, divmax int) (res float64, err error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, chk.Err("integration bounds are incorrect: a=%v, b=%v", a, b)
	}
	if a == b {
		return 0, nil
	}
	if divmax < 1 {
		divmax = DivMax
	}
	if tol <= 0 {
		tol = Tol
	}

	// first trapezoidal estimate
	h := b - a
	R := make([][]float64, divmax+1)
	R[0] = []float64{0.5 * h * (f(a) + f(b))}
	res = R[0][0]

	// successive halvings with extrapolation
	n := 1 // number of subintervals
	for i := 1; i <= divmax; i++ {
		h /= 2.0
		n *= 2
		sum := 0.0
		for k := 1; k < n; k += 2 {
			sum += f(a + float64(k)*h)
		}
		R[i] = make([]float64, i+1)
		R[i][0] = 0.5*R[i-1][0] + h*sum
		p4 := 1.0
		for j := 1; j <= i; j++ {
			p4 *= 4.0
			R[i][j] = R[i][j-1] + (R[i][j-1]-R[i-1][j-1])/(p4-1.0)
		}
		res = R[i][i]
		if math.Abs(res-R[i-1][i-1]) < tol {
			return
		}
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, chk.Err("quadrature cannot produce an estimate: res=%v", res)
	}
	return // best available estimate after exhausting divmax
}
