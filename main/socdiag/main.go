// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Diagnostics for LiteX style FPGA SoCs, run against an Etherbone bridge or
// on the target itself.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/litexsoc/socdiag"
	"github.com/litexsoc/socdiag/cmd/bist"
	"github.com/litexsoc/socdiag/cmd/cli"
	"github.com/litexsoc/socdiag/cmd/csrcmd"
	"github.com/litexsoc/socdiag/cmd/diag"
	"github.com/litexsoc/socdiag/cmd/dnacmd"
	"github.com/litexsoc/socdiag/cmd/fetch"
	"github.com/litexsoc/socdiag/cmd/ledcmd"
	"github.com/litexsoc/socdiag/cmd/sensors"
	"github.com/litexsoc/socdiag/cmd/simcmd"
)

var Args = os.Args
var Exit = os.Exit
var Stderr io.Writer = os.Stderr

func New() *socdiag.Socdiag {
	g := &socdiag.Socdiag{
		NAME: "socdiag",
	}
	g.Plot(
		&bist.Command{},
		&cli.Command{},
		&csrcmd.Command{},
		&diag.Command{},
		&dnacmd.Command{},
		fetch.Command{},
		&ledcmd.Command{},
		&sensors.Command{},
		simcmd.Command{},
	)
	return g
}

func main() {
	if err := New().Main(Args[1:]...); err != nil {
		fmt.Fprintln(Stderr, "socdiag:", err)
		Exit(1)
	}
}
