// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package leds drives the board's user LED bank.
package leds

import "github.com/litexsoc/socdiag/csr"

func Set(b csr.Bus, m *csr.Map, mask uint8) error {
	r, err := m.Reg("leds_out")
	if err != nil {
		return err
	}
	return r.Write(b, uint64(mask))
}

func Get(b csr.Bus, m *csr.Map) (uint8, error) {
	r, err := m.Reg("leds_out")
	if err != nil {
		return 0, err
	}
	v, err := r.Read(b)
	return uint8(v), err
}
