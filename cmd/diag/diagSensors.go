// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"

	"github.com/litexsoc/socdiag/dev/xadc"
)

func diagSensors() error {
	var r string

	if !regmap.Has("xadc") {
		return fmt.Errorf("xadc: no such core in this build")
	}
	x, err := xadc.New(bus, regmap)
	if err != nil {
		return err
	}

	diagHeader()

	/* diagTest: die temperature, catches a wedged sensor as well as a
	   cooked part */
	tC, err := x.Temperature()
	if err != nil {
		return err
	}
	r = CheckPassF(tC, temp_min, temp_max)
	fmt.Printf("%15s|%25s|%10s|%10.2f|%10.2f|%10.2f|%6s|%35s\n", "xadc", "temperature", "C", tC, temp_min, temp_max, r, "check die temperature")

	/* diagTest: supply rails against their DC spec */
	for _, s := range []struct {
		name     string
		read     func() (float64, error)
		min, max float64
	}{
		{"vccint", x.Vccint, vccint_min, vccint_max},
		{"vccaux", x.Vccaux, vccaux_min, vccaux_max},
		{"vccbram", x.Vccbram, vccbram_min, vccbram_max},
	} {
		v, err := s.read()
		if err != nil {
			return err
		}
		r = CheckPassF(v, s.min, s.max)
		fmt.Printf("%15s|%25s|%10s|%10.2f|%10.2f|%10.2f|%6s|%35s\n", "xadc", s.name, "V", v, s.min, s.max, r, "check supply rail")
	}
	return nil
}
