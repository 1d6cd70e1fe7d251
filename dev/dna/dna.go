// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dna reads the FPGA's factory-programmed device identifier.
package dna

import "github.com/litexsoc/socdiag/csr"

// Read returns the 57 bit device DNA.
func Read(b csr.Bus, m *csr.Map) (uint64, error) {
	r, err := m.Reg("dna_id")
	if err != nil {
		return 0, err
	}
	return r.Read(b)
}
