// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Slice a command line into args while combining single, double, or backslash
// escaped spaced arguments, e.g.:
//
//	csr write leds_out 0x5	# three args
//	echo hello\ world	# two args
//	echo "timer0 'load'"	# two args
package fields

import (
	"regexp"
	"strings"
)

var re = regexp.MustCompile("'.+'|\".+\"|\\S+")

func New(s string) []string {
	args := re.FindAllString(s, -1)
	for i, arg := range args {
		if arg[0] == '"' || arg[0] == '\'' {
			args[i] = arg[1 : len(arg)-1]
		}
	}
	for i := 0; i < len(args); {
		if strings.HasSuffix(args[i], "\\") {
			args[i] = args[i][:len(args[i])-1] + " "
			if i < len(args)-1 {
				args[i] += args[i+1]
				args = append(args[:i+1], args[i+2:]...)
			}
		} else {
			i++
		}
	}
	return args
}
