// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package csrcmd

import (
	"fmt"
	"testing"

	"github.com/litexsoc/socdiag/sim"
)

func Example() {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	if err := c.Main("-w", "ctrl_scratch", "-D", "0x12345678"); err != nil {
		fmt.Println(err)
	}
	if err := c.Main("ctrl_scratch"); err != nil {
		fmt.Println(err)
	}
	if err := c.Main("dna_id"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// ctrl_scratch: 0x12345678
	// dna_id: 0xcafe2badf00d
}

func TestByAddress(t *testing.T) {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	scratch, err := soc.Map().Reg("ctrl_scratch")
	if err != nil {
		t.Fatal(err)
	}
	addr := fmt.Sprintf("%#x", scratch.Addr)
	if err = c.Main("-w", addr, "-D", "77"); err != nil {
		t.Fatal(err)
	}
	v, err := scratch.Read(soc)
	if err != nil {
		t.Fatal(err)
	}
	if v != 77 {
		t.Fatalf("scratch %d != 77", v)
	}
}

func TestErrors(t *testing.T) {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	for _, args := range [][]string{
		{},
		{"no_such_register"},
		{"-w", "ctrl_scratch"},
		{"-w", "ctrl_scratch", "-D", "xyzzy"},
		{"-w", "dna_id", "-D", "1"},
	} {
		if err := c.Main(args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}
