// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package liner is a wrapper to Peter Harris' <pharris@opentext.com>
// "Go line editor" <github.com:peterh/liner>.
package liner

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/litexsoc/socdiag"
	"github.com/litexsoc/socdiag/cmd/cli/internal/notliner"
	"github.com/litexsoc/socdiag/internal/fields"
	"github.com/litexsoc/socdiag/internal/nocomment"
	"github.com/platinasystems/liner"
)

type Liner struct {
	history struct {
		buf   *bytes.Buffer
		lines []string
		i     int
	}
	fallback *notliner.Prompter
	socdiag  *socdiag.Socdiag
	s        *liner.State
}

func New(g *socdiag.Socdiag) *Liner {
	l := new(Liner)
	l.history.buf = new(bytes.Buffer)
	l.history.lines = make([]string, 0, 1<<6)
	if isatty.IsTerminal(uintptr(syscall.Stdin)) {
		l.s = liner.NewLiner()
		l.s.SetCompleter(l.complete)
		l.s.SetHelper(l.help)
	} else {
		l.fallback = notliner.New(os.Stdin, os.Stdout)
	}
	l.socdiag = g
	return l
}

func (l *Liner) Close() {
	if l.s != nil {
		l.s.Close()
	}
}

// Returns all completions of the given command line.
func (l *Liner) complete(line string) (lines []string) {
	lsi := strings.LastIndex(line, " ")
	args := fields.New(nocomment.New(strings.TrimLeft(line, " \t")))
	pr, pw, err := os.Pipe()
	if err != nil {
		return
	}
	go func() {
		t := os.Stdout
		defer func() { os.Stdout = t }()
		os.Stdout = pw
		l.socdiag.Main(append([]string{"complete"}, args...)...)
		pw.Close()
	}()
	prs := bufio.NewScanner(pr)
	for prs.Scan() {
		if lsi < 1 {
			lines = append(lines, prs.Text())
		} else {
			lines = append(lines, line[:lsi+1]+prs.Text())
		}
	}
	pr.Close()
	if len(lines) == 1 {
		lines[0] += " "
	}
	return
}

// Prints the best available help text for the last arg of line.
func (l *Liner) help(line string) {
	args := fields.New(nocomment.New(strings.TrimLeft(line, " \t")))
	if len(args) == 0 {
		fmt.Println("Enter command.")
	} else {
		l.socdiag.Main(append([]string{"help"}, args...)...)
	}
}

func (l *Liner) Prompt(prompt string) (string, error) {
	if l.fallback != nil {
		return l.fallback.Prompt(prompt)
	}

	if len(l.history.lines) > 0 {
		l.history.buf.Reset()
		if len(l.history.lines) < cap(l.history.lines) {
			for i := 0; i < l.history.i; i++ {
				fmt.Fprintln(l.history.buf, l.history.lines[i])
			}
		} else {
			for i := l.history.i + 1; ; i++ {
				i &= cap(l.history.lines) - 1
				if i == l.history.i {
					break
				}
				fmt.Fprintln(l.history.buf, l.history.lines[i])
			}
		}
		l.s.ReadHistory(l.history.buf)
	}

	line, err := l.s.Prompt(prompt)

	if err == nil {
		if len(l.history.lines) < cap(l.history.lines) {
			l.history.lines = append(l.history.lines, line)
		} else {
			l.history.lines[l.history.i] = line
		}
		l.history.i++
		l.history.i &= cap(l.history.lines) - 1
	} else if err == liner.ErrNotTerminalOutput {
		l.fallback = notliner.New(os.Stdin, os.Stdout)
		line, err = l.fallback.Prompt(prompt)
	}
	return line, err
}
