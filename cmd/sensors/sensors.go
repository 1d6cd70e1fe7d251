// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensors

import (
	"fmt"
	"strconv"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/dev/xadc"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
)

type Command struct {
	Bus csr.Bus
	Map *csr.Map
}

func (*Command) String() string { return "sensors" }

func (*Command) Usage() string {
	return "sensors [-t TARGET] [-csr FILE] [-pub]"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "show die temperature and supply voltages",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Reads the FPGA's analog monitor.

OPTIONS
	-pub	publish readings to the local redis server`,
	}
}

func (c *Command) Main(args ...string) error {
	flag, args := flags.New(args, "-pub")
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
	if !m.Has("xadc") {
		return fmt.Errorf("xadc: no such core in this build")
	}
	x, err := xadc.New(bus, m)
	if err != nil {
		return err
	}
	for _, s := range []struct {
		name  string
		units string
		read  func() (float64, error)
	}{
		{"temperature", "C", x.Temperature},
		{"vccint", "V", x.Vccint},
		{"vccaux", "V", x.Vccaux},
		{"vccbram", "V", x.Vccbram},
	} {
		v, err := s.read()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %.2f %s\n", s.name, v, s.units)
		if flag.ByName["-pub"] {
			field := "fpga." + s.name + ".units." + s.units
			_, err = redis.Hset(redis.DefaultHash, field,
				strconv.FormatFloat(v, 'f', 2, 64))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
