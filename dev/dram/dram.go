// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dram drives the SDRAM traffic generator and checker cores. The
// generator streams a pattern across a memory range through its own DRAM
// port; the checker reads the range back and counts mismatches. Both expose
// the same reset/base/length/shoot/done register sequence.
package dram

import (
	"fmt"

	"github.com/litexsoc/socdiag/csr"
)

// PortWidth is the cores' DRAM port width in bits; the length register
// counts transfers of this size.
const PortWidth = 128

type core struct {
	bus    csr.Bus
	reset  *csr.Register
	base   *csr.Register
	length *csr.Register
	shoot  *csr.Register
	done   *csr.Register
}

type Generator struct {
	core
}

type Checker struct {
	core
	errorCount *csr.Register
}

func NewGenerator(b csr.Bus, m *csr.Map) (*Generator, error) {
	g := &Generator{}
	if err := g.core.bind(b, m, "generator"); err != nil {
		return nil, err
	}
	return g, nil
}

func NewChecker(b csr.Bus, m *csr.Map) (*Checker, error) {
	c := &Checker{}
	if err := c.core.bind(b, m, "checker"); err != nil {
		return nil, err
	}
	var err error
	if c.errorCount, err = m.Reg("checker_error_count"); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *core) bind(b csr.Bus, m *csr.Map, name string) error {
	c.bus = b
	for _, reg := range []struct {
		p      **csr.Register
		suffix string
	}{
		{&c.reset, "_reset"},
		{&c.base, "_base"},
		{&c.length, "_length"},
		{&c.shoot, "_shoot"},
		{&c.done, "_done"},
	} {
		var err error
		if *reg.p, err = m.Reg(name + reg.suffix); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the core's internal state. It must precede Program on every
// run.
func (c *core) Reset() error {
	return c.reset.Write(c.bus, 1)
}

// Program loads the target range: a byte address and a length in port-width
// transfers.
func (c *core) Program(base, nbytes uint32) error {
	if err := c.base.Write(c.bus, uint64(base)); err != nil {
		return err
	}
	return c.length.Write(c.bus, uint64(nbytes)*8/PortWidth)
}

// Shoot triggers the run.
func (c *core) Shoot() error {
	return c.shoot.Write(c.bus, 1)
}

// Wait spins on the done register until it asserts. Completion is decided
// by the hardware alone; a core that never finishes hangs the caller.
func (c *core) Wait() error {
	for {
		v, err := c.done.Read(c.bus)
		if err != nil {
			return err
		}
		if v != 0 {
			return nil
		}
	}
}

// ErrorCount reads the checker's accumulated mismatch count.
func (c *Checker) ErrorCount() (uint32, error) {
	v, err := c.errorCount.Read(c.bus)
	return uint32(v), err
}

// Mbps converts a timed run to megabits per second, keeping the firmware's
// integer evaluation order:
//
//	speed = clk/ticks
//	speed = nbytes*speed/1000000
//	speed = 8*speed
func Mbps(nbytes uint64, ticks, clkHz uint32) (uint64, error) {
	if ticks == 0 {
		return 0, fmt.Errorf("no elapsed ticks")
	}
	speed := uint64(clkHz) / uint64(ticks)
	speed = nbytes * speed / 1000000
	return 8 * speed, nil
}
