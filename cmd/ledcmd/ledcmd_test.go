// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ledcmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/litexsoc/socdiag/sim"
)

func Example() {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	if err := c.Main("0x5"); err != nil {
		fmt.Println("err:", err)
	}
	if err := c.Main(); err != nil {
		fmt.Println("err:", err)
	}
	// Output:
	// leds: 0x5
}

func TestBadMask(t *testing.T) {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	if err := c.Main("zap"); err == nil {
		t.Error("no error for a non-numeric mask")
	}
	if err := c.Main("0x100"); err == nil {
		t.Error("no error for a mask beyond the bank")
	}
}

func TestMissingCore(t *testing.T) {
	soc := sim.New()
	m := soc.Map()
	for name := range m.Registers {
		if strings.HasPrefix(name, "leds_") {
			delete(m.Registers, name)
		}
	}
	delete(m.Bases, "leds")
	c := &Command{Bus: soc, Map: m}
	err := c.Main()
	if err == nil || !strings.Contains(err.Error(), "leds") {
		t.Error("unexpected:", err)
	}
}
