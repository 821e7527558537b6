// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. uniform clay deck")

	dsg, err := ReadData("data", "pile-clay.emb")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "Nhead", 1e-17, dsg.Nhead, 5e6)
	chk.Scalar(tst, "Grav", 1e-17, dsg.Grav, 9.8065)
	chk.Scalar(tst, "zbot", 1e-17, dsg.Soil.Zbots[0], 50)
	chk.Scalar(tst, "cu", 1e-17, dsg.Soil.Cus[0], 50000)
	chk.Scalar(tst, "D", 1e-17, dsg.Pile.D, 6)
	chk.Scalar(tst, "Din", 1e-17, dsg.Pile.Din, 5.9)
	chk.Scalar(tst, "SF", 1e-17, dsg.SF, 1.5)

	res := dsg.EmbedLength()
	io.Pforan("zembd = %v  converged = %v\n", res.Zembd, res.Converged)
	if !res.Converged || res.Zembd >= 0 {
		tst.Errorf("solve from deck failed: zembd=%v converged=%v\n", res.Zembd, res.Converged)
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. layered sand deck with parameters")

	dsg, err := ReadData("data", "pile-sand.emb")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if !dsg.Soil.Sand {
		tst.Errorf("sand flag must be set\n")
		return
	}
	chk.Scalar(tst, "delta", 1e-17, dsg.Soil.Delta, 30)
	chk.Scalar(tst, "Kapi", 1e-17, dsg.Kapi, 1.0) // plugged, from prms
	chk.Scalar(tst, "guess", 1e-17, dsg.Guess, -20)
	chk.Scalar(tst, "Grav", 1e-17, dsg.Grav, 9.8065) // default
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. invalid decks fail fast")

	_, err := ReadData("data", "bad-soil.emb")
	if err == nil {
		tst.Errorf("non-ascending layer bottoms must be an error\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = ReadData("data", "does-not-exist.emb")
	if err == nil {
		tst.Errorf("missing file must be an error\n")
		return
	}
}
