// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"
	"os"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

var debug bool
var bus csr.Bus
var regmap *csr.Map
var targetSpec string

type Command struct {
	// Bus and Map, when set, bypass target dialing.
	Bus csr.Bus
	Map *csr.Map
}

type Diag func() error

func (*Command) String() string { return "diag" }

func (*Command) Usage() string {
	return "diag [-debug] [-t TARGET] [-csr FILE] [TEST]"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "run diagnostics",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Runs diagnostic tests to validate SoC functionality and interfaces
	and prints one table row per checked parameter with its limits and a
	pass/fail verdict.

TESTS
	(none)	sensors, dna and bist
	all	every available test
	sensors	die temperature and supply rails against limits
	dna	device DNA is programmed
	leds	LED bank write and readback
	bist	short SDRAM generator/checker run
	network	ping the target's Etherbone host

OPTIONS
	-debug	trace individual probes
	-t TARGET
		SoC to test; see the man page of "csr". Defaults to the
		SOCDIAG_TARGET environment variable.
	-csr FILE
		register map of the build; default ./csr.csv or SOCDIAG_CSR.

EXAMPLES
	diag			core checks of the default target
	diag -t udp://soc all	every check across the bridge`,
	}
}

func (c *Command) Main(args ...string) error {
	var diag string
	flag, args := flags.New(args, "-debug")
	parm, args := parms.New(args, "-t", "-csr")
	debug = flag.ByName["-debug"]
	targetSpec = parm.ByName["-t"]
	if len(targetSpec) == 0 {
		targetSpec = os.Getenv(target.SpecEnv)
	}
	if n := len(args); n > 1 {
		return fmt.Errorf("%v: unexpected", args[1:])
	} else if n != 0 {
		diag = args[0]
	}

	bus, regmap = c.Bus, c.Map
	if bus == nil {
		var err error
		bus, regmap, err = target.Open(parm)
		if err != nil {
			return err
		}
		defer bus.Close()
	}

	diags, found := map[string][]Diag{
		"": []Diag{
			diagSensors,
			diagDna,
			diagBist,
		},
		"all": []Diag{
			diagSensors,
			diagDna,
			diagLeds,
			diagBist,
			diagNetwork,
		},
		"sensors": []Diag{diagSensors},
		"dna":     []Diag{diagDna},
		"leds":    []Diag{diagLeds},
		"bist":    []Diag{diagBist},
		"network": []Diag{diagNetwork},
	}[diag]
	if !found {
		return fmt.Errorf("%s: unknown", diag)
	}
	for _, f := range diags {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}
