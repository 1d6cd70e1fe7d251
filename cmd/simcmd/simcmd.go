// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package simcmd

import (
	"fmt"

	"github.com/litexsoc/socdiag/cmd"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/sim"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

type Command struct{}

func (Command) String() string { return "sim" }

func (Command) Usage() string { return "sim [-p PORT] | sim -dump" }

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "serve a simulated SoC's Etherbone bridge",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Serves the register model of the Arty bridge build on UDP so the
	other commands can be exercised without gateware, e.g.:

		socdiag sim -dump > csr.csv
		socdiag sim &
		socdiag bist -t udp://127.0.0.1:20000

OPTIONS
	-p PORT	UDP port, default 20000
	-dump	print the model's csr.csv and exit`,
	}
}

func (Command) Kind() cmd.Kind { return cmd.Blocking }

func (Command) Main(args ...string) error {
	flag, args := flags.New(args, "-dump")
	parm, args := parms.New(args, "-p")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	if flag.ByName["-dump"] {
		fmt.Print(sim.ArtyCSV)
		return nil
	}
	port := parm.ByName["-p"]
	if len(port) == 0 {
		port = "20000"
	}
	addr := ":" + port
	fmt.Printf("listening on %s\n", addr)
	return sim.ListenAndServe(addr, sim.New())
}
