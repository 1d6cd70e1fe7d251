// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"
	"time"

	"github.com/litexsoc/socdiag/dev/leds"
)

func diagLeds() error {
	var r string

	if !regmap.Has("leds") {
		return fmt.Errorf("leds: no such core in this build")
	}
	saved, err := leds.Get(bus, regmap)
	if err != nil {
		return err
	}

	diagHeader()

	/* diagTest: walk a one across the bank for the operator, then verify
	   the register reads back what was written */
	ok := true
	for _, mask := range []uint8{0x1, 0x2, 0x4, 0x8, 0xf, 0x0} {
		if err = leds.Set(bus, regmap, mask); err != nil {
			return err
		}
		got, err := leds.Get(bus, regmap)
		if err != nil {
			return err
		}
		if got != mask {
			ok = false
			if debug {
				fmt.Printf("leds: wrote %#x, read %#x\n", mask, got)
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err = leds.Set(bus, regmap, saved); err != nil {
		return err
	}
	r = CheckPassB(ok, true)
	fmt.Printf("%15s|%25s|%10s|%10t|%10t|%10t|%6s|%35s\n", "leds", "readback", "-", ok, leds_readback_min, leds_readback_max, r, "walk and read back LED bank")
	return nil
}
