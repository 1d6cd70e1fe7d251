// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package csr describes a LiteX SoC's configuration/status register space and
// how to reach it. A Bus moves 32 bit words to and from the SoC; a Map names
// the registers within it. Register accessors compose multi word values the
// way the gateware does, most significant word at the lowest address.
package csr

import "fmt"

// Bus is a 32 bit register transport. Implementations include the Etherbone
// UDP client, the on-target /dev/mem mapping, and the simulated SoC.
type Bus interface {
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, value uint32) error
	Close() error
}

const (
	RO = "ro"
	RW = "rw"
)

type Register struct {
	Name string
	Addr uint32
	// Size is the register's width in 32 bit words.
	Size int
	Mode string
}

func (r *Register) String() string { return r.Name }

// Read composes the register's words into a single value.
func (r *Register) Read(b Bus) (uint64, error) {
	var v uint64
	for i := 0; i < r.Size; i++ {
		w, err := b.Read32(r.Addr + uint32(4*i))
		if err != nil {
			return 0, fmt.Errorf("%s: %v", r.Name, err)
		}
		v = v<<32 | uint64(w)
	}
	return v, nil
}

// Write decomposes value into the register's words.
func (r *Register) Write(b Bus, value uint64) error {
	if r.Mode == RO {
		return fmt.Errorf("%s: read-only", r.Name)
	}
	for i := r.Size - 1; i >= 0; i-- {
		err := b.Write32(r.Addr+uint32(4*i), uint32(value))
		if err != nil {
			return fmt.Errorf("%s: %v", r.Name, err)
		}
		value >>= 32
	}
	return nil
}
