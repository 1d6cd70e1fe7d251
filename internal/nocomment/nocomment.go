// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package nocomment strips a string's trailing '#' prefaced comment along
// with its leading whitespace. A '#' not preceded by whitespace is not a
// comment, so register names may contain it.
package nocomment

import "strings"

func New(s string) string {
	t := strings.TrimLeft(s, " \t")
	if len(t) == 0 || t[0] == '#' {
		return ""
	}
	if i := strings.Index(t, " #"); i >= 0 {
		return strings.TrimRight(t[:i], " \t")
	}
	if i := strings.Index(t, "\t#"); i >= 0 {
		return strings.TrimRight(t[:i], " \t")
	}
	return t
}
