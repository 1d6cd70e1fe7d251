// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package socdiag dispatches the diagnostic commands of a LiteX style FPGA
// SoC: a register-map aware peek/poke, peripheral readouts, the SDRAM
// self-test, and an interactive cli.
package socdiag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/litexsoc/socdiag/cmd"
	"github.com/litexsoc/socdiag/lang"
)

type Socdiag struct {
	NAME    string
	USAGE   string
	APROPOS lang.Alt
	MAN     lang.Alt
	ByName  map[string]cmd.Cmd
}

type socdiager interface {
	Socdiag(*Socdiag)
}

func (g *Socdiag) String() string { return g.NAME }

// Plot commands on the dispatch map.
func (g *Socdiag) Plot(cmds ...cmd.Cmd) {
	if g.ByName == nil {
		g.ByName = make(map[string]cmd.Cmd)
	}
	for _, v := range cmds {
		name := v.String()
		if _, found := g.ByName[name]; found {
			panic(fmt.Errorf("%s: duplicate", name))
		}
		g.ByName[name] = v
		if m, found := v.(socdiager); found {
			m.Socdiag(g)
		}
	}
}

// Main runs the args[0] command. Without args it runs the cli.
func (g *Socdiag) Main(args ...string) error {
	if len(args) == 0 {
		args = []string{"cli"}
	}
	cmd.Swap(args)
	name := args[0]
	args = args[1:]
	switch name {
	case "apropos":
		return g.apropos(args...)
	case "complete":
		for _, s := range g.Complete(args...) {
			fmt.Println(s)
		}
		return nil
	case "help":
		return g.help(args...)
	case "man":
		return g.man(args...)
	case "usage":
		return g.usage(args...)
	}
	v, found := g.ByName[name]
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}
	return v.Main(args...)
}

// Names returns the sorted command names.
func (g *Socdiag) Names() []string {
	names := make([]string, 0, len(g.ByName))
	for name := range g.ByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Complete returns the commands and helpers matching the last arg.
func (g *Socdiag) Complete(args ...string) (ss []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[len(args)-1]
	}
	for _, name := range g.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if cmd.WhatKind(g.ByName[name]).IsHidden() {
			continue
		}
		ss = append(ss, name)
	}
	for helper := range cmd.Helpers {
		if strings.HasPrefix(helper, prefix) {
			ss = append(ss, helper)
		}
	}
	sort.Strings(ss)
	return
}
