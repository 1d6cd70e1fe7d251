// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package csr

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Map is the register layout of one SoC build, parsed from the csr.csv that
// the gateware builder writes next to the bitstream.
type Map struct {
	Registers map[string]*Register
	Bases     map[string]uint32
	Constants map[string]string
	Regions   map[string]Region
}

type Region struct {
	Name string
	Base uint32
	Size uint32
}

// Load parses gateware builder csv output. The recognized rows are,
//
//	csr_base,NAME,ADDRESS
//	csr_register,NAME,ADDRESS,SIZE,MODE
//	constant,NAME,VALUE
//	memory_region,NAME,ADDRESS,SIZE
func Load(r io.Reader) (*Map, error) {
	m := &Map{
		Registers: make(map[string]*Register),
		Bases:     make(map[string]uint32),
		Constants: make(map[string]string),
		Regions:   make(map[string]Region),
	}
	in := csv.NewReader(r)
	in.Comment = '#'
	in.FieldsPerRecord = -1
	for {
		rec, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("%v: short row", rec)
		}
		name := strings.TrimSpace(rec[1])
		switch rec[0] {
		case "csr_base":
			addr, err := parseUint32(rec[2])
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			m.Bases[name] = addr
		case "csr_register":
			if len(rec) < 5 {
				return nil, fmt.Errorf("%s: short row", name)
			}
			addr, err := parseUint32(rec[2])
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			size, err := strconv.Atoi(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			m.Registers[name] = &Register{
				Name: name,
				Addr: addr,
				Size: size,
				Mode: strings.TrimSpace(rec[4]),
			}
		case "constant":
			m.Constants[name] = strings.TrimSpace(rec[2])
		case "memory_region":
			if len(rec) < 4 {
				return nil, fmt.Errorf("%s: short row", name)
			}
			base, err := parseUint32(rec[2])
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			size, err := parseUint32(rec[3])
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			m.Regions[name] = Region{Name: name, Base: base, Size: size}
		default:
			return nil, fmt.Errorf("%s: unknown row", rec[0])
		}
	}
	return m, nil
}

func LoadFile(fn string) (*Map, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fn, err)
	}
	return m, nil
}

// Reg returns the named register.
func (m *Map) Reg(name string) (*Register, error) {
	r, found := m.Registers[name]
	if !found {
		return nil, fmt.Errorf("%s: no such register", name)
	}
	return r, nil
}

// Has reports whether the SoC build includes the named core. A core is
// present if it has a base or any register in the map, so presence of the
// "generator" core gates the self-test the way the firmware's conditional
// compilation did.
func (m *Map) Has(core string) bool {
	if _, found := m.Bases[core]; found {
		return true
	}
	prefix := core + "_"
	for name := range m.Registers {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Names returns the sorted register names.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.Registers))
	for name := range m.Registers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constant returns the named constant as an unsigned integer.
func (m *Map) Constant(name string) (uint64, error) {
	s, found := m.Constants[name]
	if !found {
		return 0, fmt.Errorf("%s: no such constant", name)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", name, err)
	}
	return v, nil
}

// ClockFrequency returns the SoC's system clock in Hz.
func (m *Map) ClockFrequency() (uint32, error) {
	for _, name := range []string{
		"system_clock_frequency",
		"config_clock_frequency",
	} {
		if v, err := m.Constant(name); err == nil {
			return uint32(v), nil
		}
	}
	return 0, fmt.Errorf("clock frequency: no such constant")
}

// CSRRange returns the span of the register space, for mapping windows.
func (m *Map) CSRRange() (base, size uint32) {
	first := true
	var last uint32
	for _, r := range m.Registers {
		end := r.Addr + uint32(4*r.Size)
		if first || r.Addr < base {
			base = r.Addr
		}
		if first || end > last {
			last = end
		}
		first = false
	}
	if !first {
		size = last - base
	}
	return
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	return uint32(v), err
}
