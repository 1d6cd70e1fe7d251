// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package fields

import (
	"reflect"
	"testing"
)

func Test(t *testing.T) {
	var args []string
	args = New(`csr -w leds_out 0x5`)
	if !reflect.DeepEqual(args, []string{
		"csr",
		"-w",
		"leds_out",
		"0x5",
	}) {
		t.Error("unexpected:", args)
	}
	args = New(`echo hello\ beautiful\ world`)
	if !reflect.DeepEqual(args, []string{
		"echo",
		"hello beautiful world",
	}) {
		t.Error("unexpected:", args)
	}
	args = New(`echo "hello 'beautiful world'"`)
	if !reflect.DeepEqual(args, []string{
		"echo",
		"hello 'beautiful world'",
	}) {
		t.Error("unexpected:", args)
	}
}
