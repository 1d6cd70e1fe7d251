// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package socdiag

import (
	"fmt"
	"strings"
)

func Usage(v Usager) string {
	return fmt.Sprint("usage:\t", strings.TrimSpace(v.Usage()))
}

type Usager interface {
	Usage() string
}

func (g *Socdiag) Usage() string {
	usage := g.USAGE
	if len(usage) == 0 {
		usage = `
	socdiag COMMAND [ ARGS ]...
	socdiag COMMAND -[-]HELPER [ ARGS ]...
	socdiag HELPER [ COMMAND ] [ ARGS ]...
	socdiag

	HELPER := { apropos | complete | help | man | usage }`
	}
	return usage
}

func (g *Socdiag) usage(args ...string) error {
	var u Usager = g
	if len(args) > 0 {
		v, found := g.ByName[args[0]]
		if !found {
			return fmt.Errorf("%s: not found", args[0])
		}
		u = v
	}
	fmt.Println(Usage(u))
	return nil
}
