// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package socdiag

import (
	"fmt"

	"github.com/litexsoc/socdiag/lang"
)

func (g *Socdiag) Apropos() lang.Alt {
	apropos := g.APROPOS
	if apropos == nil {
		apropos = lang.Alt{
			lang.EnUS: "diagnostics for LiteX style FPGA SoCs",
		}
	}
	return apropos
}

func (g *Socdiag) apropos(args ...string) error {
	pad := func(n int) {
		if n < 0 {
			fmt.Print("\n\t\t")
		} else {
			fmt.Print("                "[:n])
		}
	}
	if len(args) == 0 {
		args = g.Names()
	}
	for i, name := range args {
		if len(name) == 0 {
			continue
		}
		if v, found := g.ByName[name]; found {
			fmt.Print(name)
			pad(16 - len(name))
			fmt.Println(v.Apropos())
		} else if i == 0 {
			return fmt.Errorf("%s: not found", name)
		}
	}
	return nil
}
