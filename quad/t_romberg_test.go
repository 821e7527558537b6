// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_romberg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("romberg01. known integrals")

	res, err := Romberg(func(x float64) float64 { return x * x }, 0, 1, 0, 0)
	if err != nil {
		tst.Errorf("Romberg failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "∫x² dx in [0,1]", 1e-10, res, 1.0/3.0)

	res, err = Romberg(math.Sin, 0, math.Pi, 0, 0)
	if err != nil {
		tst.Errorf("Romberg failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "∫sin(x) dx in [0,π]", 1e-10, res, 2.0)

	// linear overburden-like integrand over a negative interval
	res, err = Romberg(func(z float64) float64 { return -z }, -15, 0, 0, 0)
	if err != nil {
		tst.Errorf("Romberg failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "∫(-z) dz in [-15,0]", 1e-10, res, 112.5)

	// zero-width interval
	res, err = Romberg(math.Exp, 2, 2, 0, 0)
	if err != nil {
		tst.Errorf("Romberg failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "zero-width interval", 1e-17, res, 0)
}

func Test_romberg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("romberg02. comparison with sampled trapezoidal rule")

	f := func(z float64) float64 { return math.Exp(z) * (1.0 - z/30.0) }
	a, b := -25.0, 0.0

	res, err := Romberg(f, a, b, 0, 0)
	if err != nil {
		tst.Errorf("Romberg failed: %v\n", err)
		return
	}

	npts := 10001
	X := utl.LinSpace(a, b, npts)
	Y := make([]float64, npts)
	for i, x := range X {
		Y[i] = f(x)
	}
	ref := num.Trapz(X, Y)
	io.Pforan("romberg = %v  trapz = %v\n", res, ref)
	chk.Scalar(tst, "romberg vs trapz", 1e-4, res, ref)
}

func Test_romberg03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("romberg03. budget exhaustion returns best estimate")

	res, err := Romberg(func(x float64) float64 { return math.Sin(50.0 * x) }, 0, 1, 1e-15, 2)
	if err != nil {
		tst.Errorf("budget exhaustion must not be fatal: %v\n", err)
		return
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		tst.Errorf("estimate must be finite: res=%v\n", res)
		return
	}

	_, err = Romberg(math.Exp, 0, math.Inf(1), 0, 0)
	if err == nil {
		tst.Errorf("non-finite bounds must be an error\n")
		return
	}
}
