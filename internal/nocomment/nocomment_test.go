// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nocomment

import "testing"

func Test(t *testing.T) {
	for _, x := range []struct {
		in, want string
	}{
		{"hello # world", "hello"},
		{"# hello world", ""},
		{"   # indented comment", ""},
		{"hello#world", "hello#world"},
		{"hello #world", "hello"},
		{"\tleds 0xf\t# walk", "leds 0xf"},
	} {
		if got := New(x.in); got != x.want {
			t.Errorf("%q: got %q, want %q", x.in, got, x.want)
		}
	}
}
