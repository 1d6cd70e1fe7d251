// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/litexsoc/socdiag"
	"github.com/litexsoc/socdiag/cmd/cli/internal/liner"
	"github.com/litexsoc/socdiag/cmd/cli/internal/notliner"
	"github.com/litexsoc/socdiag/internal/fields"
	"github.com/litexsoc/socdiag/internal/nocomment"
	"github.com/litexsoc/socdiag/lang"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/url"
)

type Command struct {
	Prompt string
	g      *socdiag.Socdiag
}

func (*Command) String() string { return "cli" }

func (*Command) Usage() string {
	return "cli [-x] [-no-liner] [URL]"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "command line interpreter",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	The socdiag command line interpreter is an incomplete shell with just
	this basic syntax:
		COMMAND [OPTIONS]... [ARGS]...

	The COMMAND and each option or argument are separated with one or more
	spaces. Leading and trailing spaces are ignored.

	The '-x' flag enables trace of each interpreted command.

	The '-no-liner' flag disables line editing and history.

	With 'URL', commands are sourced from the reference instead of
	prompted tty input, e.g.:

		socdiag cli http://server/bringup.cmds

COMMENTS
	Hash tag prefaced comments are ignored, e.g.:
		csr -w leds_out 0x5 # inner three
	or,
		# ignored line...

ESCAPES
	The space between arguments may be escaped.

		echo with\ one\ argument\ having\ four\ spaces

QUOTATION
	Arguments may be single or double quoted.

		echo 'with two arguments' each "having two spaces"`,
	}
}

func (c *Command) Socdiag(g *socdiag.Socdiag) { c.g = g }

func (c *Command) Main(args ...string) error {
	var (
		prompter interface {
			Prompt(string) (string, error)
			Close()
		}
		isScript bool
	)

	if c.g == nil {
		panic("cli's socdiag is nil")
	}

	csig := make(chan os.Signal, 1)
	signal.Notify(csig, os.Interrupt)
	defer signal.Stop(csig)

	flag, args := flags.New(args, "-x", "-no-liner")
	switch len(args) {
	case 0:
		if flag.ByName["-no-liner"] {
			prompter = notliner.New(os.Stdin, os.Stdout)
		} else {
			prompter = liner.New(c.g)
		}
		defer prompter.Close()
	case 1:
		script, err := url.Open(args[0])
		if err != nil {
			return err
		}
		defer script.Close()
		prompter = notliner.New(script, nil)
		defer prompter.Close()
		isScript = true
	default:
		return fmt.Errorf("%v: unexpected", args[1:])
	}

	prompt := c.Prompt
	if len(prompt) == 0 {
		prompt = "socdiag> "
		if hn, err := os.Hostname(); err == nil && len(hn) > 0 {
			prompt = fmt.Sprint(hn, "> ")
		}
	}

	for {
		select {
		case <-csig:
			fmt.Println("\nCommand interrupted")
			continue
		default:
		}
		line, err := prompter.Prompt(prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		cargs := fields.New(nocomment.New(line))
		if len(cargs) == 0 {
			continue
		}
		if flag.ByName["-x"] {
			fmt.Println("+", strings.Join(cargs, " "))
		}
		if cargs[0] == "exit" {
			return nil
		}
		err = c.g.Main(cargs...)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			if isScript {
				return err
			}
		}
	}
}
