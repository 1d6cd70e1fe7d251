// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package xadc

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	// transfer function endpoints and a mid-scale sample
	for _, x := range []struct {
		raw  uint16
		want float64
	}{
		{0, -273.15},
		{2586, 45.03},
		{4095, 230.70},
	} {
		got := ToCelsius(x.raw)
		if math.Abs(got-x.want) > 0.01 {
			t.Errorf("ToCelsius(%d) = %.2f, want %.2f", x.raw, got, x.want)
		}
	}
	for _, x := range []struct {
		raw  uint16
		want float64
	}{
		{0, 0},
		{1297, 0.95},
		{4096, 3},
	} {
		got := ToVolts(x.raw)
		if math.Abs(got-x.want) > 0.01 {
			t.Errorf("ToVolts(%d) = %.2f, want %.2f", x.raw, got, x.want)
		}
	}
}
