// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package socdiag

import (
	"fmt"
	"strings"

	"github.com/litexsoc/socdiag/cmd"
	"github.com/litexsoc/socdiag/lang"
)

type maner interface {
	Man() lang.Alt
}

var section = struct {
	name, synopsis lang.Alt
}{
	name: lang.Alt{
		lang.EnUS: "NAME",
	},
	synopsis: lang.Alt{
		lang.EnUS: "SYNOPSIS",
	},
}

func (g *Socdiag) Man() lang.Alt {
	man := g.MAN
	if man == nil {
		man = lang.Alt{
			lang.EnUS: `
TARGETS
	Commands that touch hardware take a -t TARGET option naming the
	SoC's Etherbone bridge, udp://HOST[:PORT], or "mem" for the local
	register window. The register map is read from the build's csr.csv.

SEE ALSO
	socdiag apropos [COMMAND], socdiag man COMMAND`,
		}
	}
	return man
}

func (g *Socdiag) man(args ...string) error {
	var cmds []cmd.Cmd
	for i, arg := range args {
		v, found := g.ByName[arg]
		if !found {
			if i == 0 {
				return fmt.Errorf("%s: not found", arg)
			}
			break
		}
		cmds = append(cmds, v)
	}
	if len(cmds) == 0 {
		cmds = []cmd.Cmd{g}
	}
	for i, v := range cmds {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(section.name, "\n\t", v, " - ",
			v.Apropos(), "\n\n", section.synopsis, "\n\t",
			strings.TrimSpace(v.Usage()), "\n")
		if method, found := v.(maner); found {
			man := method.Man().String()
			if !strings.HasPrefix(man, "\n") {
				fmt.Println()
			}
			fmt.Print(man)
			if !strings.HasSuffix(man, "\n") {
				fmt.Println()
			}
		}
	}
	return nil
}
