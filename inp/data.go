// Copyright 2016 The Gopile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data format (.emb JSON files) for
// embedment calculations
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gopile/emb"
	"github.com/cpmech/gopile/msoil"
	"github.com/cpmech/gopile/pile"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds all input data for one embedment calculation
type Data struct {
	Desc  string        `json:"desc"`  // description of this calculation
	Soil  msoil.Profile `json:"soil"`  // soil stratigraphy
	Pile  pile.Section  `json:"pile"`  // pile cross-section
	Nhead float64       `json:"nhead"` // axial force at pile head, absolute value [N]
	Grav  float64       `json:"grav"`  // gravity acceleration; 9.8065 if not given [m/s²]
	Prms  fun.Prms      `json:"prms"`  // optional capacity/solver parameters
}

// ReadData reads an input file and returns a fully initialised design.
// All validation happens here, before any numerical work.
func ReadData(dir, fn string) (dsg *emb.Design, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}

	// decode
	var dat Data
	err = json.Unmarshal(b, &dat)
	if err != nil {
		return
	}
	if dat.Grav <= 0 {
		dat.Grav = 9.8065
	}

	// initialise models
	err = dat.Soil.Init()
	if err != nil {
		return nil, err
	}
	err = dat.Pile.Init()
	if err != nil {
		return nil, err
	}

	// design
	dsg = new(emb.Design)
	err = dsg.Init(&dat.Soil, &dat.Pile, dat.Nhead, dat.Grav)
	if err != nil {
		return nil, err
	}
	if dat.Prms != nil {
		err = dsg.SetPrms(dat.Prms)
		if err != nil {
			return nil, err
		}
	}
	return
}

// String outputs the input data
func (o Data) String() string {
	b, _ := json.MarshalIndent(o, "", "  ")
	return io.Sf("%s", b)
}
