// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package csrcmd

import (
	"fmt"
	"strconv"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

type Command struct {
	// Bus and Map, when set, bypass target dialing.
	Bus csr.Bus
	Map *csr.Map
}

func (*Command) String() string { return "csr" }

func (*Command) Usage() string {
	return `
	csr [-csr FILE] -l
	csr [-t TARGET] [-csr FILE] [[-w] REGISTER [-D VALUE]]`
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "read/write the SoC's configuration registers",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	This command reads and writes the SoC's configuration/status
	registers.
	  -l to list the build's registers, no target needed
	  -r to read a register, default
	  -w to write a register
	     REGISTER is a name from the build's map, or a hex address
	  -D VALUE is the value to write, hex or decimal`,
	}
}

func (c *Command) Main(args ...string) (err error) {
	flag, args := flags.New(args, "-l", "-r", "-w")
	parm, args := parms.New(args, "-t", "-csr", "-D")

	m := c.Map
	if m == nil && flag.ByName["-l"] {
		fn := parm.ByName["-csr"]
		if len(fn) == 0 {
			fn = "csr.csv"
		}
		if m, err = csr.LoadFile(fn); err != nil {
			return err
		}
	}
	if flag.ByName["-l"] {
		for _, name := range m.Names() {
			r := m.Registers[name]
			fmt.Printf("%#08x %s %s[%d]\n", r.Addr, r.Mode,
				r.Name, r.Size)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("REGISTER: missing")
	}
	bus := c.Bus
	if bus == nil {
		if bus, m, err = target.Open(parm); err != nil {
			return err
		}
		defer bus.Close()
	}

	reg, err := m.Reg(args[0])
	if err != nil {
		a, perr := strconv.ParseUint(args[0], 0, 32)
		if perr != nil {
			return err
		}
		reg = &csr.Register{
			Name: args[0],
			Addr: uint32(a),
			Size: 1,
			Mode: csr.RW,
		}
	}

	if flag.ByName["-w"] {
		if parm.ByName["-D"] == "" {
			return fmt.Errorf("-D VALUE: missing")
		}
		d, err := strconv.ParseUint(parm.ByName["-D"], 0, 64)
		if err != nil {
			return fmt.Errorf("%s: %v", parm.ByName["-D"], err)
		}
		return reg.Write(bus, d)
	}
	v, err := reg.Read(bus)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %#x\n", reg.Name, v)
	return nil
}
