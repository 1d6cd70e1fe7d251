// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dnacmd

import (
	"fmt"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/dev/dna"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/parms"
)

type Command struct {
	Bus csr.Bus
	Map *csr.Map
}

func (*Command) String() string { return "dna" }

func (*Command) Usage() string { return "dna [-t TARGET] [-csr FILE]" }

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "show the FPGA's device DNA",
	}
}

func (c *Command) Main(args ...string) error {
	parm, args := parms.New(args, "-t", "-csr")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	bus, m := c.Bus, c.Map
	if bus == nil {
		var err error
		if bus, m, err = target.Open(parm); err != nil {
			return err
		}
		defer bus.Close()
	}
	if !m.Has("dna") {
		return fmt.Errorf("dna: no such core in this build")
	}
	id, err := dna.Read(bus, m)
	if err != nil {
		return err
	}
	fmt.Printf("dna: %#015x\n", id)
	return nil
}
