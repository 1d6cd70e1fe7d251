// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package xadc reads the FPGA's on-die analog monitor: die temperature and
// the core, auxiliary and block-RAM supply rails.
package xadc

import "github.com/litexsoc/socdiag/csr"

type XADC struct {
	bus         csr.Bus
	temperature *csr.Register
	vccint      *csr.Register
	vccaux      *csr.Register
	vccbram     *csr.Register
}

func New(b csr.Bus, m *csr.Map) (*XADC, error) {
	x := &XADC{bus: b}
	for _, reg := range []struct {
		p    **csr.Register
		name string
	}{
		{&x.temperature, "xadc_temperature"},
		{&x.vccint, "xadc_vccint"},
		{&x.vccaux, "xadc_vccaux"},
		{&x.vccbram, "xadc_vccbram"},
	} {
		var err error
		if *reg.p, err = m.Reg(reg.name); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (x *XADC) Temperature() (float64, error) {
	v, err := x.temperature.Read(x.bus)
	return ToCelsius(uint16(v)), err
}

func (x *XADC) Vccint() (float64, error)  { return x.rail(x.vccint) }
func (x *XADC) Vccaux() (float64, error)  { return x.rail(x.vccaux) }
func (x *XADC) Vccbram() (float64, error) { return x.rail(x.vccbram) }

func (x *XADC) rail(r *csr.Register) (float64, error) {
	v, err := r.Read(x.bus)
	return ToVolts(uint16(v)), err
}

// ToCelsius converts a raw 12 bit temperature sample per the converter's
// transfer function.
func ToCelsius(raw uint16) float64 {
	return float64(raw)*503.975/4096 - 273.15
}

// ToVolts converts a raw 12 bit supply sample, full scale 3 V.
func ToVolts(raw uint16) float64 {
	return float64(raw) * 3 / 4096
}
