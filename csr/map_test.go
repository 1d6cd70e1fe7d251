// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package csr

import (
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	m, err := LoadFile("testdata/csr.csv")
	if err != nil {
		t.Fatal(err)
	}
	t.Run("register", func(t *testing.T) {
		r, err := m.Reg("generator_done")
		if err != nil {
			t.Fatal(err)
		}
		if r.Addr != 0xe000b010 {
			t.Errorf("addr %#x != %#x", r.Addr, 0xe000b010)
		}
		if r.Size != 1 || r.Mode != RO {
			t.Errorf("size %d mode %q", r.Size, r.Mode)
		}
	})
	t.Run("multi-word-register", func(t *testing.T) {
		r, err := m.Reg("dna_id")
		if err != nil {
			t.Fatal(err)
		}
		if r.Size != 2 {
			t.Errorf("size %d != 2", r.Size)
		}
	})
	t.Run("capability", func(t *testing.T) {
		for _, core := range []string{"generator", "checker", "timer0"} {
			if !m.Has(core) {
				t.Errorf("%s: not found", core)
			}
		}
		if m.Has("hdmi_out") {
			t.Error("hdmi_out: unexpected core")
		}
	})
	t.Run("clock-frequency", func(t *testing.T) {
		clk, err := m.ClockFrequency()
		if err != nil {
			t.Fatal(err)
		}
		if clk != 100000000 {
			t.Errorf("%d != 100000000", clk)
		}
	})
	t.Run("region", func(t *testing.T) {
		ram, found := m.Regions["main_ram"]
		if !found {
			t.Fatal("main_ram: not found")
		}
		if ram.Base != 0x40000000 || ram.Size != 0x10000000 {
			t.Errorf("main_ram %#x/%#x", ram.Base, ram.Size)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	for _, row := range []string{
		"csr_register,foo_bar,0xe0000000,1",
		"xyzzy,foo,0",
		"csr_base,foo",
		"csr_register,foo_bar,zero,1,rw",
	} {
		if _, err := Load(strings.NewReader(row)); err == nil {
			t.Errorf("%q: no error", row)
		}
	}
}

type memBus map[uint32]uint32

func (b memBus) Read32(addr uint32) (uint32, error) { return b[addr], nil }
func (b memBus) Write32(addr, value uint32) error   { b[addr] = value; return nil }
func (b memBus) Close() error                       { return nil }

func TestRegisterCompose(t *testing.T) {
	b := memBus{0x100: 0x01234567, 0x104: 0x89abcdef}
	r := &Register{Name: "wide", Addr: 0x100, Size: 2, Mode: RW}
	v, err := r.Read(b)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x0123456789abcdef {
		t.Fatalf("read %#x", v)
	}
	if err = r.Write(b, 0xfedcba9876543210); err != nil {
		t.Fatal(err)
	}
	if b[0x100] != 0xfedcba98 || b[0x104] != 0x76543210 {
		t.Fatalf("write %#x %#x", b[0x100], b[0x104])
	}
	ro := &Register{Name: "ro", Addr: 0x100, Size: 1, Mode: RO}
	if err = ro.Write(b, 0); err == nil {
		t.Fatal("read-only write: no error")
	}
}
