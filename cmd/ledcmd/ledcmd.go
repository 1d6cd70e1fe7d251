// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ledcmd

import (
	"fmt"
	"strconv"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/dev/leds"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/parms"
)

type Command struct {
	Bus csr.Bus
	Map *csr.Map
}

func (*Command) String() string { return "leds" }

func (*Command) Usage() string { return "leds [-t TARGET] [-csr FILE] [MASK]" }

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "show or set the user LEDs",
	}
}

func (c *Command) Main(args ...string) error {
	parm, args := parms.New(args, "-t", "-csr")
	if len(args) > 1 {
		return fmt.Errorf("%v: unexpected", args[1:])
	}
	bus, m := c.Bus, c.Map
	if bus == nil {
		var err error
		if bus, m, err = target.Open(parm); err != nil {
			return err
		}
		defer bus.Close()
	}
	if !m.Has("leds") {
		return fmt.Errorf("leds: no such core in this build")
	}
	if len(args) == 1 {
		mask, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			return fmt.Errorf("%s: %v", args[0], err)
		}
		return leds.Set(bus, m, uint8(mask))
	}
	mask, err := leds.Get(bus, m)
	if err != nil {
		return err
	}
	fmt.Printf("leds: %#x\n", mask)
	return nil
}
