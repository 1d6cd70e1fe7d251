// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package sim is a register-level model of the Arty SoC build. It implements
// csr.Bus for in-process use and can serve the Etherbone bridge protocol on
// UDP, so commands and tests run without gateware.
//
// The model is behavioral, not cycle accurate: the traffic cores assert done
// after a programmable number of status polls, the countdown timer burns a
// programmable number of ticks per timed run, and the checker reports a
// programmable error count.
package sim

import (
	"strings"
	"sync"

	"github.com/litexsoc/socdiag/csr"
)

// Access is one bus operation, recorded in order.
type Access struct {
	Write bool
	Name  string
	Addr  uint32
	Value uint32
}

type SoC struct {
	// DoneAfter is how many polls of a core's done register return 0
	// after shoot before done asserts.
	DoneAfter int

	// Elapsed is the tick count the timer burns per timed run.
	Elapsed uint32

	// Errors is the checker's accumulated error count.
	Errors uint32

	mu       sync.Mutex
	m        *csr.Map
	regs     map[uint32]uint32
	names    map[uint32]string
	shooting map[string]int
	accesses []Access
}

func New() *SoC {
	s := &SoC{
		m:        Arty(),
		regs:     make(map[uint32]uint32),
		names:    make(map[uint32]string),
		shooting: make(map[string]int),
	}
	for _, r := range s.m.Registers {
		for i := 0; i < r.Size; i++ {
			s.names[r.Addr+uint32(4*i)] = r.Name
		}
	}
	// power-on identity and sensor readings
	s.poke("dna_id", 0x0000cafe, 0x2badf00d)
	s.poke("xadc_temperature", 2586) // ~45 C
	s.poke("xadc_vccint", 1297)      // ~0.95 V
	s.poke("xadc_vccaux", 2458)      // ~1.80 V
	s.poke("xadc_vccbram", 1297)
	return s
}

func (s *SoC) Map() *csr.Map { return s.m }

func (s *SoC) Close() error { return nil }

func (s *SoC) Read32(addr uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.names[addr]
	v := s.regs[addr]
	switch {
	case strings.HasSuffix(name, "_done"):
		core := strings.TrimSuffix(name, "_done")
		if left, armed := s.shooting[core]; armed {
			if left > 0 {
				s.shooting[core] = left - 1
				v = 0
			} else {
				v = 1
			}
		} else {
			v = 0
		}
	case name == "checker_error_count":
		v = s.Errors
	}
	s.accesses = append(s.accesses, Access{
		Name:  name,
		Addr:  addr,
		Value: v,
	})
	return v, nil
}

func (s *SoC) Write32(addr, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.names[addr]
	s.accesses = append(s.accesses, Access{
		Write: true,
		Name:  name,
		Addr:  addr,
		Value: value,
	})
	switch {
	case strings.HasSuffix(name, "_reset"):
		core := strings.TrimSuffix(name, "_reset")
		delete(s.shooting, core)
	case strings.HasSuffix(name, "_shoot"):
		if value != 0 {
			core := strings.TrimSuffix(name, "_shoot")
			s.shooting[core] = s.DoneAfter
		}
	case name == "timer0_update_value":
		if value != 0 {
			load, _ := s.m.Reg("timer0_load")
			val, _ := s.m.Reg("timer0_value")
			s.regs[val.Addr] = s.regs[load.Addr] - s.Elapsed
		}
	}
	s.regs[addr] = value
	return nil
}

// Log returns a copy of the bus accesses so far.
func (s *SoC) Log() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Access{}, s.accesses...)
}

// Reads counts reads of the named register.
func (s *SoC) Reads(name string) (n int) {
	for _, a := range s.Log() {
		if !a.Write && a.Name == name {
			n++
		}
	}
	return
}

func (s *SoC) poke(name string, words ...uint32) {
	r, err := s.m.Reg(name)
	if err != nil {
		panic(err)
	}
	for i, w := range words {
		s.regs[r.Addr+uint32(4*i)] = w
	}
}
