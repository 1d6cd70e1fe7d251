// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package cmd

const (
	Hidden Kind = 1 << iota
	Blocking
)

func WhatKind(v Cmd) Kind {
	if m, found := v.(kinder); found {
		return m.Kind()
	}
	return 0
}

type kinder interface {
	Kind() Kind
}

type Kind uint16

func (k Kind) IsHidden() bool   { return (k & Hidden) == Hidden }
func (k Kind) IsBlocking() bool { return (k & Blocking) == Blocking }

func (k Kind) String() string {
	s := "unknown"
	switch k {
	case Hidden:
		s = "hidden"
	case Blocking:
		s = "blocking"
	}
	return s
}
